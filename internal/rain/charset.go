package rain

import (
	"sort"
	"strings"
)

// Charsets are the named glyph sets a column samples from.
var Charsets = map[string][]rune{
	"matrix": []rune("ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝ0123456789"),
	"ascii":  []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789@#$%&*+=<>"),
	"binary": []rune("01"),
	"hex":    []rune("0123456789ABCDEF"),
}

const DefaultCharset = "matrix"

// ResolveCharset returns the named set, or the runes of spec itself when it
// is not a known name. An empty spec selects the default set.
func ResolveCharset(spec string) []rune {
	if spec == "" {
		return Charsets[DefaultCharset]
	}
	if set, ok := Charsets[strings.ToLower(spec)]; ok {
		return set
	}
	return []rune(spec)
}

// CharsetNames returns the sorted names of the built-in sets.
func CharsetNames() []string {
	names := make([]string, 0, len(Charsets))
	for name := range Charsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
