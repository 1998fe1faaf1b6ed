package schema

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/AnickaBurova/regex-parsers/engine"
	"github.com/AnickaBurova/regex-parsers/internal/diagnostic"
	"github.com/AnickaBurova/regex-parsers/internal/similar"
	"github.com/AnickaBurova/regex-parsers/primitive"
)

// Validate checks the structure of the file: names, modes, engines,
// expressions, kinds and the groups and parsers fields refer to.
func (f *File) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "schema file is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported schema version %q", f.Version), "", "version")
	}

	if len(f.Parsers) == 0 {
		res.AddWarning("no_parsers", "schema defines no parsers", "", "parsers")
	}

	v := validator{res: res, byName: map[string]*ParserDef{}}

	for i := range f.Parsers {
		p := &f.Parsers[i]
		loc := fmt.Sprintf("parsers[%d]", i)

		if p.Name == "" {
			res.AddError("parser_without_name", "parser has no name", "", loc)
			continue
		}

		if _, ok := v.byName[p.Name]; ok {
			res.AddError("duplicate_parser", fmt.Sprintf("duplicate parser %q", p.Name), p.Name, loc)
			continue
		}

		v.byName[p.Name] = p
		v.names = append(v.names, p.Name)
	}

	for i := range f.Parsers {
		if p := &f.Parsers[i]; p.Name != "" {
			v.parser(p, fmt.Sprintf("parsers[%d]", i))
		}
	}

	return res
}

type validator struct {
	res    *diagnostic.Diagnostics
	byName map[string]*ParserDef
	names  []string
}

func (v *validator) parser(p *ParserDef, loc string) {
	mode, ok := modeOf(*p)
	if !ok {
		v.res.AddError("unknown_mode",
			fmt.Sprintf("unknown mode %q%s", p.Mode, similar.Hint(p.Mode, modeNames())), p.Name, loc+".mode")
	}

	eng, err := engineOf(*p)
	if err != nil {
		v.res.AddError("unknown_engine",
			fmt.Sprintf("%v%s", err, similar.Hint(p.Engine, engine.Names())), p.Name, loc+".engine")
	}

	switch {
	case p.Timeout < 0:
		v.res.AddError("negative_timeout", fmt.Sprintf("timeout %s is negative", p.Timeout), p.Name, loc+".timeout")
	case p.Timeout > 0 && eng != nil && eng.Name() != "regexp2":
		v.res.AddWarning("timeout_ignored",
			fmt.Sprintf("timeout is only used by the regexp2 engine, not %s", eng.Name()), p.Name, loc+".timeout")
	}

	if len(p.Patterns) == 0 {
		v.res.AddError("no_patterns", "parser has no patterns", p.Name, loc+".patterns")
		return
	}

	if mode == ModeSingle && len(p.Patterns) > 1 {
		v.res.AddError("single_with_many_patterns",
			fmt.Sprintf("single mode takes one pattern, got %d; use sum or chain", len(p.Patterns)), p.Name, loc+".patterns")
	}

	variants := map[string]struct{}{}

	for i := range p.Patterns {
		pd := &p.Patterns[i]
		ploc := fmt.Sprintf("%s.patterns[%d]", loc, i)

		if mode == ModeSum && pd.Variant != "" {
			if _, ok := variants[pd.Variant]; ok {
				v.res.AddError("duplicate_variant", fmt.Sprintf("duplicate variant %q", pd.Variant), p.Name, ploc)
			}

			variants[pd.Variant] = struct{}{}
		}

		v.pattern(p, pd, ploc, eng)
	}
}

func (v *validator) pattern(p *ParserDef, pd *PatternDef, loc string, eng engine.Engine) {
	var groups []string

	switch {
	case pd.Regex == "":
		v.res.AddError("empty_regex", "pattern has no regex", p.Name, loc+".regex")
	case eng != nil:
		re, err := eng.Compile(pd.Regex)
		if err != nil {
			v.res.AddError("bad_regex", fmt.Sprintf("regex does not compile: %v", err), p.Name, loc+".regex")
			break
		}

		groups = re.SubexpNames()
	}

	seen := map[string]struct{}{}

	for i := range pd.Fields {
		fd := &pd.Fields[i]
		floc := fmt.Sprintf("%s.fields[%d]", loc, i)

		if fd.Name == "" {
			v.res.AddError("field_without_name", "field has no name", p.Name, floc)
			continue
		}

		if _, ok := seen[fd.Name]; ok {
			v.res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", fd.Name), p.Name, floc)
		}

		seen[fd.Name] = struct{}{}

		v.kind(p, fd, floc)

		if groups != nil {
			v.group(p, fd, floc, groups)
		}
	}
}

func (v *validator) group(p *ParserDef, fd *FieldDef, loc string, groups []string) {
	g := fd.GroupName()

	if n, err := strconv.Atoi(g); err == nil {
		if n < 0 || n >= len(groups) {
			v.res.AddError("unknown_group",
				fmt.Sprintf("group %d of field %q is out of range, the regex has %d groups", n, fd.Name, len(groups)-1),
				p.Name, loc+".group")
		}

		return
	}

	if !slices.Contains(groups, g) {
		v.res.AddError("unknown_group",
			fmt.Sprintf("field %q refers to unknown group %q%s", fd.Name, g, similar.Hint(g, groups)), p.Name, loc+".group")
	}
}

func (v *validator) kind(p *ParserDef, fd *FieldDef, loc string) {
	switch {
	case fd.Kind == "":
		v.res.AddError("field_without_kind", fmt.Sprintf("field %q has no kind", fd.Name), p.Name, loc+".kind")
		return
	case !slices.Contains(kindNames(), fd.Kind):
		v.res.AddError("unknown_kind",
			fmt.Sprintf("unknown kind %q%s", fd.Kind, similar.Hint(fd.Kind, kindNames())), p.Name, loc+".kind")
		return
	}

	if fd.Kind != KindParser {
		if fd.Parser != "" {
			v.res.AddWarning("parser_ignored",
				fmt.Sprintf("parser %q is only used by the %q kind", fd.Parser, KindParser), p.Name, loc+".parser")
		}
	} else {
		v.reference(p, fd, loc)
	}

	if fd.Layout != "" && fd.Kind != "time" {
		v.res.AddWarning("layout_ignored", "layout is only used by the \"time\" kind", p.Name, loc+".layout")
	}
}

func (v *validator) reference(p *ParserDef, fd *FieldDef, loc string) {
	if fd.Parser == "" {
		v.res.AddError("missing_parser_reference", fmt.Sprintf("field %q needs a parser", fd.Name), p.Name, loc+".parser")
		return
	}

	ref, ok := v.byName[fd.Parser]
	if !ok {
		v.res.AddError("unknown_parser",
			fmt.Sprintf("unknown parser %q%s", fd.Parser, similar.Hint(fd.Parser, v.names)), p.Name, loc+".parser")
		return
	}

	if mode, _ := modeOf(*ref); mode == ModeChain {
		v.res.AddError("nested_chain",
			fmt.Sprintf("parser %q is a chain and cannot parse a single group", fd.Parser), p.Name, loc+".parser")
	}
}

func kindNames() []string {
	return append(primitive.Names(), KindRune, KindBorrow, KindBigInt, KindParser)
}

func modeOf(p ParserDef) (Mode, bool) {
	if p.Mode == "" {
		return ModeSingle, true
	}

	return ParseMode(p.Mode)
}

func engineOf(p ParserDef) (engine.Engine, error) {
	e, err := engine.ByName(p.Engine)
	if err != nil {
		return nil, err
	}

	if b, ok := e.(engine.Backtrack); ok {
		b.Timeout = p.Timeout
		return b, nil
	}

	return e, nil
}
