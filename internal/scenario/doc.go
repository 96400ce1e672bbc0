// Package scenario loads and validates declarative comparison-run files
// for the numlab CLI.
//
// A scenario file names one or more formula-pair sweeps: which pair to
// run, the sampling domain, and the flagging tolerance. Two formats are
// supported, selected by file extension:
//
//   - YAML (.yaml, .yml), parsed with gopkg.in/yaml.v3
//   - JSONC (.json, .jsonc), comments stripped with github.com/tidwall/jsonc
//     before parsing with the standard encoding/json
//
// JSONC support exists because scenario files are meant to be annotated:
// a sweep that demonstrates a pitfall is worth a comment explaining it.
package scenario
