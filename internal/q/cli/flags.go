package cli

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
)

type flagKind uint8

const (
	flagBool flagKind = iota + 1
	flagString
	flagInt
	flagStringSlice
	flagEnum
)

// FlagSet is a typed flag registry for a command.
type FlagSet struct {
	byLong  map[string]*flagDef
	byShort map[rune]*flagDef
}

type flagDef struct {
	name      string
	shorthand rune
	usage     string
	kind      flagKind
	defValue  string // for help; "" hides the default

	boolPtr   *bool
	stringPtr *string
	intPtr    *int
	slicePtr  *[]string
	choices   []string // flagEnum only

	changed bool
}

func newFlagSet() *FlagSet {
	return &FlagSet{
		byLong:  map[string]*flagDef{},
		byShort: map[rune]*flagDef{},
	}
}

func (fs *FlagSet) Bool(name string, shorthand rune, def bool, usage string) *bool {
	ptr := new(bool)
	*ptr = def
	defValue := ""
	if def {
		defValue = "true"
	}
	fs.add(&flagDef{
		name:      name,
		shorthand: shorthand,
		usage:     usage,
		kind:      flagBool,
		defValue:  defValue,
		boolPtr:   ptr,
	})
	return ptr
}

func (fs *FlagSet) String(name string, shorthand rune, def string, usage string) *string {
	ptr := new(string)
	*ptr = def
	fs.add(&flagDef{
		name:      name,
		shorthand: shorthand,
		usage:     usage,
		kind:      flagString,
		defValue:  quoteDefault(def),
		stringPtr: ptr,
	})
	return ptr
}

func (fs *FlagSet) Int(name string, shorthand rune, def int, usage string) *int {
	ptr := new(int)
	*ptr = def
	defValue := ""
	if def != 0 {
		defValue = strconv.Itoa(def)
	}
	fs.add(&flagDef{
		name:      name,
		shorthand: shorthand,
		usage:     usage,
		kind:      flagInt,
		defValue:  defValue,
		intPtr:    ptr,
	})
	return ptr
}

// StringSlice defines a repeatable flag. The first occurrence on the command line replaces def; later occurrences append.
func (fs *FlagSet) StringSlice(name string, shorthand rune, def []string, usage string) *[]string {
	ptr := new([]string)
	*ptr = slices.Clone(def)
	quoted := make([]string, len(def))
	for i, d := range def {
		quoted[i] = strconv.Quote(d)
	}
	defValue := ""
	if len(def) > 0 {
		defValue = "[" + strings.Join(quoted, " ") + "]"
	}
	fs.add(&flagDef{
		name:      name,
		shorthand: shorthand,
		usage:     usage,
		kind:      flagStringSlice,
		defValue:  defValue,
		slicePtr:  ptr,
	})
	return ptr
}

// Enum defines a string flag whose value must be one of choices. def must be one of choices or empty.
func (fs *FlagSet) Enum(name string, shorthand rune, def string, choices []string, usage string) *string {
	if len(choices) == 0 {
		panic("cli: enum flag needs choices: --" + name)
	}
	if def != "" && !slices.Contains(choices, def) {
		panic(fmt.Sprintf("cli: enum flag default %q is not a choice: --%s", def, name))
	}
	ptr := new(string)
	*ptr = def
	fs.add(&flagDef{
		name:      name,
		shorthand: shorthand,
		usage:     usage,
		kind:      flagEnum,
		defValue:  quoteDefault(def),
		stringPtr: ptr,
		choices:   slices.Clone(choices),
	})
	return ptr
}

// Changed reports whether the flag was set on the command line. It panics if no such flag is defined.
func (fs *FlagSet) Changed(name string) bool {
	def, ok := fs.byLong[name]
	if !ok {
		panic("cli: Changed called for undefined flag: --" + name)
	}
	return def.changed
}

func (fs *FlagSet) add(def *flagDef) {
	if def.name == "" {
		panic("cli: flag name must be non-empty")
	}
	if def.name == "help" || def.shorthand == 'h' {
		panic("cli: -h/--help is reserved")
	}
	if _, ok := fs.byLong[def.name]; ok {
		panic("cli: duplicate flag: --" + def.name)
	}
	fs.byLong[def.name] = def
	if def.shorthand != 0 {
		if _, ok := fs.byShort[def.shorthand]; ok {
			panic(fmt.Sprintf("cli: duplicate shorthand flag: -%c", def.shorthand))
		}
		fs.byShort[def.shorthand] = def
	}
}

func quoteDefault(s string) string {
	if s == "" {
		return ""
	}
	return strconv.Quote(s)
}

// sorted returns the flags ordered by long name.
func (fs *FlagSet) sorted() []*flagDef {
	defs := make([]*flagDef, 0, len(fs.byLong))
	for _, def := range fs.byLong {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].name < defs[j].name })
	return defs
}

func (def *flagDef) kindName() string {
	switch def.kind {
	case flagBool:
		return "bool"
	case flagString, flagStringSlice:
		return "string"
	case flagInt:
		return "int"
	case flagEnum:
		return strings.Join(def.choices, "|")
	}
	return ""
}

func (fs *FlagSet) parseAndSet(token string, hasDashDash bool, name string, shorthand rune, value *string, nextValue *string) (bool, error) {
	var def *flagDef
	if name != "" {
		def = fs.byLong[name]
	} else {
		def = fs.byShort[shorthand]
	}
	if def == nil {
		return false, UsageErrorf("unknown flag: %s", token)
	}

	consumeNext := false
	var raw string
	if value != nil {
		raw = *value
	} else {
		if def.kind == flagBool {
			if nextValue != nil {
				if _, err := strconv.ParseBool(*nextValue); err == nil {
					raw = *nextValue
					consumeNext = true
				} else {
					raw = "true"
				}
			} else {
				raw = "true"
			}
		} else {
			if nextValue == nil || hasDashDash {
				if hasDashDash {
					return false, UsageErrorf("flag needs a value before --: %s", token)
				}
				return false, UsageErrorf("flag needs a value: %s", token)
			}
			raw = *nextValue
			consumeNext = true
		}
	}

	if err := def.set(raw); err != nil {
		return false, UsageErrorf("invalid value for %s: %v", displayFlag(def), err)
	}
	return consumeNext, nil
}

func (def *flagDef) set(raw string) error {
	switch def.kind {
	case flagBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*def.boolPtr = v
	case flagString:
		*def.stringPtr = raw
	case flagInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*def.intPtr = v
	case flagStringSlice:
		if !def.changed {
			*def.slicePtr = nil
		}
		*def.slicePtr = append(*def.slicePtr, raw)
	case flagEnum:
		if !slices.Contains(def.choices, raw) {
			return fmt.Errorf("%q is not one of %s", raw, strings.Join(def.choices, ", "))
		}
		*def.stringPtr = raw
	default:
		return fmt.Errorf("unknown flag kind")
	}
	def.changed = true
	return nil
}

func displayFlag(def *flagDef) string {
	if def.shorthand != 0 {
		return fmt.Sprintf("-%c/--%s", def.shorthand, def.name)
	}
	return "--" + def.name
}
