package codegen

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	typeKeywordToken int = iota
	aliasKeywordToken
	symbolToken
	remainderToken
)

var typeKeywordMatcher = parsly.NewToken(typeKeywordToken, "type ", matcher.NewFragment("type "))
var aliasKeywordMatcher = parsly.NewToken(aliasKeywordToken, " as ", matcher.NewFragment(" as "))
var symbolMatcher = parsly.NewToken(symbolToken, "symbol", &nonSpaceMatcher{})
var remainderMatcher = parsly.NewToken(remainderToken, "alias", &remainderMatch{})

type nonSpaceMatcher struct{}

func (m *nonSpaceMatcher) Match(cursor *parsly.Cursor) (matched int) {
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		if cursor.Input[i] == ' ' {
			break
		}
		matched++
	}
	return matched
}

type remainderMatch struct{}

func (m *remainderMatch) Match(cursor *parsly.Cursor) int {
	return cursor.InputSize - cursor.Pos
}

//ParseImportInput parses "name", "type Name", "name as alias" or "type Name as Alias",
//any other input is taken literally as a value import
func ParseImportInput(input string) ImportInfo {
	literal := ImportInfo{Imported: input, Used: input}
	cursor := parsly.NewCursor("", []byte(input), 0)
	result := ImportInfo{}
	if cursor.MatchOne(typeKeywordMatcher).Code == typeKeywordToken {
		result.IsType = true
	}
	matched := cursor.MatchOne(symbolMatcher)
	if matched.Code != symbolToken {
		return literal
	}
	result.Imported = matched.Text(cursor)
	result.Used = result.Imported
	if cursor.Pos >= cursor.InputSize {
		return result
	}
	if cursor.MatchOne(aliasKeywordMatcher).Code != aliasKeywordToken {
		return literal
	}
	matched = cursor.MatchOne(remainderMatcher)
	if matched.Code != remainderToken {
		return literal
	}
	result.Used = matched.Text(cursor)
	return result
}
