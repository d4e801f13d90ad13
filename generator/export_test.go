package generator

// RenderKeyListForTest exposes renderKeyList.
var RenderKeyListForTest = renderKeyList

// RenderKeyValueListForTest exposes renderKeyValueList.
var RenderKeyValueListForTest = renderKeyValueList
