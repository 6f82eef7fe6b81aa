package testgen

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mipsvec/isa"
	"github.com/ezrec/mipsvec/synth"
)

var (
	rePreamble = regexp.MustCompile(`^li \$([0-9]+), 0x[0-9a-f]{8}$`)
	reBody     = regexp.MustCompile(`^([a-z]+[0-9]*)_([0-9]+): ([a-z]+)(?: (.*))?$`)
	reRegister = regexp.MustCompile(`^\$([0-9]+)$`)
	reImm16    = regexp.MustCompile(`^0x[0-9a-f]{4}$`)
	reShift    = regexp.MustCompile(`^[0-9]+$`)
)

// checkInstruction verifies the operands of a body instruction against
// its opcode signature and the case register pool.
func checkInstruction(t *testing.T, pool Pool, opcode string, operands string) {
	assert := assert.New(t)

	kinds, ok := isa.Signature(opcode)
	if !assert.True(ok, opcode) {
		return
	}

	var args []string
	if len(operands) > 0 {
		args = strings.Split(operands, ", ")
	}
	if !assert.Len(args, len(kinds), operands) {
		return
	}

	for n, kind := range kinds {
		arg := args[n]
		switch kind {
		case isa.KIND_REG:
			m := reRegister.FindStringSubmatch(arg)
			if assert.NotNil(m, arg) {
				index, _ := strconv.Atoi(m[1])
				assert.True(pool.Contains(index), "%v not in %v", arg, pool)
			}
		case isa.KIND_IMM16:
			assert.Regexp(reImm16, arg)
		case isa.KIND_ADDR:
			assert.Equal(synth.ADDRESS_LITERAL, arg)
		case isa.KIND_SH:
			assert.Regexp(reShift, arg)
			sh, _ := strconv.Atoi(arg)
			assert.LessOrEqual(sh, synth.SHIFT_MAX)
		default:
			t.Errorf("unexpected kind %v", kind)
		}
	}
}

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(synth.NewRand(1))
	tpls := isa.Default().Distinguishing

	c, err := e.Assemble("c", tpls, []int{4}, 2)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal("c", c.Label)
	assert.Len(c.Pool, 3)
	assert.Equal(4, c.Pool[0])
	assert.Len(c.Preamble, len(c.Pool))
	assert.Len(c.Body, len(tpls))

	for n, line := range c.Preamble {
		m := rePreamble.FindStringSubmatch(line)
		if assert.NotNil(m, line) {
			assert.Equal(strconv.Itoa(c.Pool[n]), m[1])
		}
	}

	for n, line := range c.Body {
		m := reBody.FindStringSubmatch(line)
		if !assert.NotNil(m, line) {
			continue
		}
		assert.Equal(fmt.Sprintf("c_%d", n), m[1]+"_"+m[2])
		assert.Equal(tpls[n].Opcode, m[3])
		checkInstruction(t, c.Pool, m[3], m[4])
	}

	lines := slices.Collect(c.Lines())
	assert.Equal(append(slices.Clone(c.Preamble), c.Body...), lines)
	assert.Equal(strings.Join(lines, "\n"), c.String())
	assert.False(strings.HasSuffix(c.String(), "\n"))
}

func TestAssembleEmpty(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(synth.NewRand(2))
	c, err := e.Assemble("x", nil, nil, 3)
	assert.NoError(err)
	assert.Len(c.Preamble, 3)
	assert.Empty(c.Body)
}

func TestAssembleErrors(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(synth.NewRand(3))
	tpls := isa.Default().Distinguishing

	c, err := e.Assemble("c", tpls, []int{32}, 0)
	assert.Nil(c)
	assert.ErrorIs(err, ErrRegisterInvalid)

	c, err = e.Assemble("c", tpls, nil, 0)
	assert.Nil(c)
	assert.ErrorIs(err, ErrPoolSize)

	delete(e.Synthesizer, isa.KIND_ADDR)
	c, err = e.Assemble("c", tpls, nil, 3)
	assert.Nil(c)
	assert.ErrorIs(err, ErrSynthesizerMissing)

	e = NewEngine(synth.NewRand(3))
	delete(e.Synthesizer, isa.KIND_IMM32)
	c, err = e.Assemble("c", tpls, nil, 3)
	assert.Nil(c)
	assert.ErrorIs(err, ErrSynthesizerMissing)
}
