package engine

import "regexp"

// RE2 is the standard library engine. It runs in linear time and accepts
// the RE2 syntax including (?P<name>...) and (?<name>...) groups.
type RE2 struct{}

func (RE2) Name() string { return "re2" }

func (RE2) Compile(expr string) (Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	return re2Regexp{re: re}, nil
}

type re2Regexp struct {
	re *regexp.Regexp
}

func (r re2Regexp) String() string        { return r.re.String() }
func (r re2Regexp) SubexpNames() []string { return r.re.SubexpNames() }
func (r re2Regexp) FindIndex(text string) ([]int, error) {
	return r.re.FindStringSubmatchIndex(text), nil
}
