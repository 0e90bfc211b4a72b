// Package recipe evaluates Lua scripts that assemble fake data fixtures.
//
// A script sees a global fake table backed by one seeded generator, so
// evaluating the same script with the same seed always yields the same
// fixture. The script's return value is converted to Go values: tables
// with contiguous integer keys from 1 become []any, every other table
// becomes map[string]any, and numbers without a fractional part become
// int64.
package recipe

import (
	"fmt"
	"math"
	"math/big"

	"github.com/Shopify/go-lua"

	"github.com/kironimmanuel/faker"
	"github.com/kironimmanuel/faker/internal/ops"
	"github.com/kironimmanuel/faker/random"
)

// Engine evaluates recipe scripts against one Faker. Scripts run on a
// fresh Lua state each time, but they share the Faker's draw stream, so
// consecutive Run calls continue the same deterministic sequence.
type Engine struct {
	f *faker.Faker
}

// New returns an Engine drawing from f.
func New(f *faker.Faker) *Engine {
	return &Engine{f: f}
}

// Run evaluates script and returns its converted result.
func (e *Engine) Run(script string) (any, error) {
	state := e.newState()
	if err := lua.LoadString(state, script); err != nil {
		return nil, fmt.Errorf("load recipe: %w", err)
	}
	return finish(state)
}

// RunFile evaluates the script at path and returns its converted result.
func (e *Engine) RunFile(path string) (any, error) {
	state := e.newState()
	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load recipe %s: %w", path, err)
	}
	return finish(state)
}

func finish(state *lua.State) (any, error) {
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run recipe: %w", err)
	}
	value := luaToGo(state, -1)
	state.Pop(1)
	return value, nil
}

func (e *Engine) newState() *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)
	state.NewTable()
	lua.SetFunctions(state, e.functions(), 0)
	state.SetGlobal("fake")
	return state
}

func (e *Engine) functions() []lua.RegistryFunction {
	return []lua.RegistryFunction{
		{Name: "int", Function: e.luaInt},
		{Name: "float", Function: e.luaFloat},
		{Name: "bigint", Function: e.luaBigInt},
		{Name: "alpha", Function: e.luaAlpha},
		{Name: "hex", Function: e.luaHex},
		{Name: "numeric", Function: e.luaNumeric},
		{Name: "first_name", Function: e.provider((*faker.Faker).FirstName)},
		{Name: "last_name", Function: e.provider((*faker.Faker).LastName)},
		{Name: "name", Function: e.provider((*faker.Faker).Name)},
		{Name: "city", Function: e.provider((*faker.Faker).City)},
		{Name: "street_address", Function: e.provider((*faker.Faker).StreetAddress)},
		{Name: "country", Function: e.provider((*faker.Faker).Country)},
		{Name: "zip_code", Function: e.provider((*faker.Faker).ZipCode)},
		{Name: "username", Function: e.provider((*faker.Faker).Username)},
		{Name: "email", Function: e.provider((*faker.Faker).Email)},
		{Name: "domain", Function: e.provider((*faker.Faker).DomainName)},
		{Name: "url", Function: e.provider((*faker.Faker).URL)},
		{Name: "ipv4", Function: e.provider((*faker.Faker).IPv4)},
		{Name: "hex_color", Function: e.provider((*faker.Faker).HexColor)},
		{Name: "password", Function: e.provider((*faker.Faker).Password)},
		{Name: "uuid", Function: e.provider((*faker.Faker).UUID)},
		{Name: "word", Function: e.provider((*faker.Faker).Word)},
		{Name: "auth_token", Function: e.luaAuthToken},
		{Name: "words", Function: e.luaWords},
		{Name: "sentence", Function: e.luaSentence},
		{Name: "paragraph", Function: e.luaParagraph},
		{Name: "title", Function: e.luaTitle},
		{Name: "latitude", Function: e.luaLatitude},
		{Name: "longitude", Function: e.luaLongitude},
		{Name: "seed", Function: e.luaSeed},
		{Name: "draws", Function: e.luaDraws},
	}
}

// provider adapts a no-argument Faker method into a Lua function.
func (e *Engine) provider(fn func(*faker.Faker) string) lua.Function {
	return func(state *lua.State) int {
		state.PushString(fn(e.f))
		return 1
	}
}

func (e *Engine) luaInt(state *lua.State) int {
	min := lua.OptInteger(state, 1, random.DefaultIntMin)
	max := lua.OptInteger(state, 2, min+random.DefaultIntMax)
	v, err := e.f.Generator().Int(int64(min), int64(max))
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
	}
	state.PushInteger(int(v))
	return 1
}

func (e *Engine) luaFloat(state *lua.State) int {
	min := lua.OptInteger(state, 1, random.DefaultIntMin)
	max := lua.OptInteger(state, 2, min+random.DefaultIntMax)
	precision := lua.OptInteger(state, 3, random.DefaultFloatPrecision)
	v, err := e.f.Generator().Float(int64(min), int64(max), precision)
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
	}
	state.PushNumber(v)
	return 1
}

func (e *Engine) luaBigInt(state *lua.State) int {
	min, ok := new(big.Int).SetString(lua.CheckString(state, 1), 10)
	if !ok {
		lua.ArgumentError(state, 1, "decimal integer expected")
	}
	max, ok := new(big.Int).SetString(lua.CheckString(state, 2), 10)
	if !ok {
		lua.ArgumentError(state, 2, "decimal integer expected")
	}
	v, err := e.f.Generator().BigInt(min, max)
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
	}
	state.PushString(v.String())
	return 1
}

func (e *Engine) luaAlpha(state *lua.State) int {
	length := lua.OptInteger(state, 1, random.DefaultStringLength)
	casing, err := ops.ParseCasing(lua.OptString(state, 2, ""))
	if err != nil {
		lua.ArgumentError(state, 2, err.Error())
	}
	banned := lua.OptString(state, 3, "")
	s, err := e.f.Generator().Alpha(random.AlphaRequest{
		Length: length,
		Casing: casing,
		Banned: []rune(banned),
	})
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
	}
	state.PushString(s)
	return 1
}

func (e *Engine) luaHex(state *lua.State) int {
	length := lua.OptInteger(state, 1, random.DefaultStringLength)
	banned := lua.OptString(state, 2, "")
	s, err := e.f.Generator().Hex(random.HexRequest{
		Length: length,
		Banned: []rune(banned),
	})
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
	}
	state.PushString(s)
	return 1
}

func (e *Engine) luaNumeric(state *lua.State) int {
	length := lua.OptInteger(state, 1, random.DefaultStringLength)
	allowLeading := state.ToBoolean(2)
	banned := lua.OptString(state, 3, "")
	s, err := e.f.Generator().Numeric(random.NumericRequest{
		Length:            length,
		AllowLeadingZeros: allowLeading,
		Banned:            []rune(banned),
	})
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
	}
	state.PushString(s)
	return 1
}

func (e *Engine) luaAuthToken(state *lua.State) int {
	token, err := e.f.AuthToken()
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
	}
	state.PushString(token)
	return 1
}

func (e *Engine) luaWords(state *lua.State) int {
	n := lua.CheckInteger(state, 1)
	words := e.f.Words(n)
	state.NewTable()
	for i, w := range words {
		state.PushString(w)
		state.RawSetInt(-2, i+1)
	}
	return 1
}

func (e *Engine) luaSentence(state *lua.State) int {
	state.PushString(e.f.Sentence(lua.CheckInteger(state, 1)))
	return 1
}

func (e *Engine) luaParagraph(state *lua.State) int {
	state.PushString(e.f.Paragraph(lua.CheckInteger(state, 1)))
	return 1
}

func (e *Engine) luaTitle(state *lua.State) int {
	state.PushString(e.f.Title(lua.CheckInteger(state, 1)))
	return 1
}

func (e *Engine) luaLatitude(state *lua.State) int {
	state.PushNumber(e.f.Latitude())
	return 1
}

func (e *Engine) luaLongitude(state *lua.State) int {
	state.PushNumber(e.f.Longitude())
	return 1
}

func (e *Engine) luaSeed(state *lua.State) int {
	state.PushInteger(int(e.f.Seed()))
	return 1
}

func (e *Engine) luaDraws(state *lua.State) int {
	state.PushInteger(int(e.f.Generator().Source().Draws()))
	return 1
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	default:
		return nil
	}
}

// tableToGo converts a table to a slice when its keys are exactly 1..n,
// and to a string keyed map otherwise.
func tableToGo(state *lua.State, index int) any {
	index = state.AbsIndex(index)

	isArray := true
	maxIndex := 0
	count := 0
	state.PushNil()
	for state.Next(index) {
		if isArray {
			if idx, ok := state.ToInteger(-2); ok && state.TypeOf(-2) == lua.TypeNumber && idx > 0 {
				count++
				if idx > maxIndex {
					maxIndex = idx
				}
			} else {
				isArray = false
			}
		}
		state.Pop(1)
	}

	if isArray && count > 0 && maxIndex == count {
		result := make([]any, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			state.RawGetInt(index, i)
			result = append(result, luaToGo(state, -1))
			state.Pop(1)
		}
		return result
	}

	return tableToMap(state, index)
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func normalizeNumber(value float64) any {
	if math.Mod(value, 1) == 0 {
		return int64(value)
	}
	return value
}
