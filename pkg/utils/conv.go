package utils

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"
)

// RawToString turns a JSON scalar into its text form. Strings are unquoted,
// integers keep every digit and exact integers written with a fraction or
// exponent are printed plainly. It reports false for null, empty strings,
// zero, non-integer numbers and non-scalar values.
func RawToString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return "", false
	}
	r, ok := new(big.Rat).SetString(n.String())
	if !ok || !r.IsInt() || r.Sign() == 0 {
		return "", false
	}
	return r.Num().String(), true
}
