// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package testgen

import (
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mipsvec/isa"
	"github.com/ezrec/mipsvec/synth"
)

const (
	DEFAULT_SUBSET = 5      // Templates per ordering.
	DEFAULT_EXTRA  = 3      // Random registers per pool.
	DEFAULT_LABEL  = "case" // Case label prefix.
)

// Options configures one generation run.
type Options struct {
	Set    *isa.InstructionSet // Instruction set under test.
	Subset int                 // Length of each ordering of distinguishing templates.
	Pinned []int               // Registers present in every pool.
	Extra  int                 // Random registers added to every pool.
	Label  string              // Case label prefix.
	Seed   uint64              // Random seed.

	SeedSet bool // If set, Seed was chosen by the configuration.
}

// Defaults returns the reference configuration.
func Defaults() Options {
	return Options{
		Set:    isa.Default(),
		Subset: DEFAULT_SUBSET,
		Extra:  DEFAULT_EXTRA,
		Label:  DEFAULT_LABEL,
	}
}

// configDefines are visible to configuration scripts.
var configDefines = starlark.StringDict{
	"REGISTER_COUNT": starlark.MakeInt(synth.REGISTER_COUNT),
	"SHIFT_MAX":      starlark.MakeInt(synth.SHIFT_MAX),
}

// LoadOptions executes a Starlark configuration script and applies the
// globals it sets over opts. Globals the script does not set are left
// untouched, and on error opts is not modified at all.
//
//	instructions     = ["addiu REG, REG, IMM16", ...]
//	distinguishing   = ["lw REG, ADDR", ...]
//	excluded         = [...]
//	subset           = 5
//	extra_registers  = 3
//	pinned_registers = [0, REGISTER_COUNT - 1]
//	label            = "case"
//	seed             = 1234
func LoadOptions(opts *Options, name string, src io.Reader) (err error) {
	loaded := *opts

	thread := &starlark.Thread{Name: name}
	fopts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&fopts, thread, name, src, configDefines)
	if err != nil {
		err = &ErrConfig{Name: name, Err: err}
		return
	}

	set := loaded.Set
	if set == nil {
		set = isa.Default()
	} else {
		clone := *set
		set = &clone
	}

	groups := []struct {
		name string
		tpls *[]isa.Template
	}{
		{"instructions", &set.All},
		{"distinguishing", &set.Distinguishing},
		{"excluded", &set.Excluded},
	}
	for _, group := range groups {
		value, ok := globals[group.name]
		if !ok {
			continue
		}
		var texts []string
		texts, err = configStrings(group.name, value)
		if err != nil {
			return
		}
		var tpls []isa.Template
		tpls, err = isa.ParseTemplates(texts)
		if err != nil {
			err = &ErrConfig{Name: group.name, Err: err}
			return
		}
		*group.tpls = tpls
	}

	ints := []struct {
		name  string
		value *int
	}{
		{"subset", &loaded.Subset},
		{"extra_registers", &loaded.Extra},
	}
	for _, entry := range ints {
		value, ok := globals[entry.name]
		if !ok {
			continue
		}
		*entry.value, err = configInt(entry.name, value)
		if err != nil {
			return
		}
	}

	value, ok := globals["pinned_registers"]
	if ok {
		loaded.Pinned, err = configInts("pinned_registers", value)
		if err != nil {
			return
		}
	}

	value, ok = globals["label"]
	if ok {
		label, is_str := starlark.AsString(value)
		if !is_str {
			err = &ErrConfig{Name: "label", Err: ErrConfigType}
			return
		}
		loaded.Label = label
	}

	value, ok = globals["seed"]
	if ok {
		st_int, is_int := value.(starlark.Int)
		if !is_int {
			err = &ErrConfig{Name: "seed", Err: ErrConfigType}
			return
		}
		loaded.Seed, ok = st_int.Uint64()
		if !ok {
			err = &ErrConfig{Name: "seed", Err: ErrConfigType}
			return
		}
		loaded.SeedSet = true
	}

	loaded.Set = set
	*opts = loaded

	return
}

func configInt(name string, value starlark.Value) (n int, err error) {
	if _, ok := value.(starlark.Int); !ok {
		err = &ErrConfig{Name: name, Err: ErrConfigType}
		return
	}
	n, err = starlark.AsInt32(value)
	if err != nil {
		err = &ErrConfig{Name: name, Err: err}
	}
	return
}

func configInts(name string, value starlark.Value) (ns []int, err error) {
	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = &ErrConfig{Name: name, Err: ErrConfigType}
		return
	}

	iter := iterable.Iterate()
	defer iter.Done()

	var elem starlark.Value
	for iter.Next(&elem) {
		var n int
		n, err = configInt(name, elem)
		if err != nil {
			return
		}
		ns = append(ns, n)
	}

	return
}

func configStrings(name string, value starlark.Value) (strs []string, err error) {
	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = &ErrConfig{Name: name, Err: ErrConfigType}
		return
	}
	iter := iterable.Iterate()
	defer iter.Done()

	var elem starlark.Value
	for iter.Next(&elem) {
		str, is_str := starlark.AsString(elem)
		if !is_str {
			err = &ErrConfig{Name: name, Err: ErrConfigType}
			return
		}
		strs = append(strs, str)
	}

	return
}
