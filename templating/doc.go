// Package templating moves cec templates and generated text in and out of
// the generator. ReadTemplate loads a template from a file or stdin,
// OutputPath names the generated file from a pattern with {name},
// {fullName} and {type} placeholders (expanded with valyala/fasttemplate),
// and WriteOutput stores the result or prints it to stdout.
package templating
