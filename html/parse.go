package html

// Parse tokenizes and constructs a tree from input in one call. It is a
// convenience wrapper around NewTokenizer + ConstructTree for callers that
// don't need to hold onto the intermediate Tokenizer (the CLI in
// cmd/toybrowser and most tests use this).
func Parse(input string, opts ...Option) *Window {
	return ConstructTree(NewTokenizer(input, opts...), opts...)
}
