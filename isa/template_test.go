package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("REG", KIND_REG.String())
	assert.Equal("IMM16", KIND_IMM16.String())
	assert.Equal("ADDR", KIND_ADDR.String())
	assert.Equal("SH", KIND_SH.String())
	assert.Equal("IMM32", KIND_IMM32.String())
	assert.Equal("Kind(9)", Kind(9).String())

	assert.True(KIND_SH.Valid())
	assert.False(Kind(-1).Valid())
	assert.False(Kind(KIND_COUNT).Valid())

	assert.Equal([]Kind{KIND_REG, KIND_IMM16, KIND_ADDR, KIND_SH, KIND_IMM32}, Kinds())
}

func TestParseTemplate(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text     string
		expected Template
	}{
		{"addiu REG, REG, IMM16", Template{"addiu", []Kind{KIND_REG, KIND_REG, KIND_IMM16}}},
		{"lui REG, IMM16", Template{"lui", []Kind{KIND_REG, KIND_IMM16}}},
		{"lw REG, ADDR", Template{"lw", []Kind{KIND_REG, KIND_ADDR}}},
		{"  sll REG,REG,  SH ", Template{"sll", []Kind{KIND_REG, KIND_REG, KIND_SH}}},
		{"li REG, IMM32", Template{"li", []Kind{KIND_REG, KIND_IMM32}}},
		{"nop", Template{Opcode: "nop"}},
	}

	for _, entry := range table {
		tpl, err := ParseTemplate(entry.text)
		assert.NoError(err, entry.text)
		assert.Equal(entry.expected, tpl, entry.text)
	}
}

func TestParseTemplateErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseTemplate("")
	assert.True(errors.Is(err, ErrOpcodeMissing))

	_, err = ParseTemplate("addu REG, , REG")
	assert.True(errors.Is(err, ErrOperandMissing))

	_, err = ParseTemplate("addu REG, REG, R3")
	var ep ErrPlaceholder
	assert.True(errors.As(err, &ep))
	assert.Equal(ErrPlaceholder("R3"), ep)

	var es *ErrTemplateSyntax
	assert.True(errors.As(err, &es))
	assert.Equal("addu REG, REG, R3", es.Text)

	assert.Panics(func() { MustParseTemplate("bogus $1") })
}

func TestTemplateString(t *testing.T) {
	assert := assert.New(t)

	for _, text := range defaultAll {
		assert.Equal(text, MustParseTemplate(text).String())
	}
	assert.Equal("nop", Template{Opcode: "nop"}.String())
}

func TestTemplateCount(t *testing.T) {
	assert := assert.New(t)

	tpl := MustParseTemplate("addiu REG, REG, IMM16")
	assert.Equal(3, tpl.Arity())
	assert.Equal(2, tpl.Count(KIND_REG))
	assert.Equal(1, tpl.Count(KIND_IMM16))
	assert.Equal(0, tpl.Count(KIND_SH))
}

func TestTemplateCheck(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(MustParseTemplate("sll REG, REG, SH").Check())
	assert.NoError(MustParseTemplate("frob REG, SH").Check())

	err := MustParseTemplate("lui REG, REG").Check()
	var es *ErrSignature
	assert.True(errors.As(err, &es))
	assert.Equal("lui REG, REG", es.Template)
	assert.Equal([]Kind{KIND_REG, KIND_IMM16}, es.Want)
	assert.Contains(err.Error(), "REG, IMM16")

	kinds, ok := Signature("lw")
	assert.True(ok)
	assert.Equal([]Kind{KIND_REG, KIND_ADDR}, kinds)
	_, ok = Signature("frob")
	assert.False(ok)
}

func TestDefaultSet(t *testing.T) {
	assert := assert.New(t)

	set := Default()
	assert.Len(set.All, 12)
	assert.Len(set.Distinguishing, 6)
	assert.Len(set.Excluded, 3)
	assert.NoError(set.Check())

	// addi and add have their operands swapped, sub traps on overflow.
	assert.Error(set.Excluded[0].Check())
	assert.Error(set.Excluded[1].Check())
	assert.NoError(set.Excluded[2].Check())

	for _, tpl := range set.Distinguishing {
		assert.Contains(set.All, tpl)
	}

	// Each call is independent.
	set.Distinguishing[0].Opcode = "changed"
	assert.Equal("addiu", Default().Distinguishing[0].Opcode)
}

func TestSetCheckDistinct(t *testing.T) {
	assert := assert.New(t)

	set := Default()
	set.Distinguishing = append(set.Distinguishing, MustParseTemplate("lw REG, ADDR"))
	var ed ErrDuplicate
	assert.True(errors.As(set.Check(), &ed))
	assert.Equal(ErrDuplicate("lw REG, ADDR"), ed)

	set = Default()
	set.Excluded = append(set.Excluded, MustParseTemplate("sll REG, REG, SH"))
	var ee ErrExcluded
	assert.True(errors.As(set.Check(), &ee))
	assert.Equal(ErrExcluded("sll REG, REG, SH"), ee)

	// Same opcode with other operands is a different template.
	set = Default()
	set.Excluded = append(set.Excluded, Template{Opcode: "lw", Operands: []Kind{KIND_REG}})
	assert.NoError(set.Check())

	assert.True(MustParseTemplate("lw REG, ADDR").Equal(MustParseTemplate("lw  REG,ADDR")))
	assert.False(MustParseTemplate("lw REG, ADDR").Equal(MustParseTemplate("sw REG, ADDR")))
}

func TestParseTemplates(t *testing.T) {
	assert := assert.New(t)

	tpls, err := ParseTemplates([]string{"lw REG, ADDR", "sw REG, ADDR"})
	assert.NoError(err)
	assert.Len(tpls, 2)

	_, err = ParseTemplates([]string{"lw REG, ADDR", "sw REG, OFFSET"})
	assert.Error(err)
}
