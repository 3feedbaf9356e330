// Package config loads .sgspell.toml, the per-project linter settings.
//
// The file is found by walking up from the checked path. Every key is
// optional; absent keys keep the defaults returned by Default.
//
//	locale = "US"
//	min_word_length = 3
//	ignore = ["nolint", "teh"]
//	exclude = ["vendor/**", "*_gen.sg"]
//	severity = "warning"
//
//	[corrections]
//	wih = "with"
//
//	[check]
//	comments = true
//	strings = true
//	identifiers = true
//	all = false
package config
