package csvutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/lepinkainen/smarterboxd/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string
	City string
}

func parsePerson(record []string) (person, error) {
	return person{Name: record[0], City: record[1]}, nil
}

func TestProcessCSV(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("test.csv", "name,city\nAlice,NYC\n\"Bob, Jr.\",LA\n")

	people, err := ProcessCSV(env.Path("test.csv"), parsePerson, ProcessorOptions{MinFields: 2})
	require.NoError(t, err)

	assert.Equal(t, []person{
		{Name: "Alice", City: "NYC"},
		{Name: "Bob, Jr.", City: "LA"},
	}, people)
}

func TestProcessCSV_MissingAndEmptyFiles(t *testing.T) {
	env := testutil.NewTestEnv(t)

	_, err := ProcessCSV(env.Path("missing.csv"), parsePerson, ProcessorOptions{})
	require.Error(t, err)

	env.WriteFileString("empty.csv", "")
	_, err = ProcessCSV(env.Path("empty.csv"), parsePerson, ProcessorOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestProcessReader_SkipsShortAndBlankRecords(t *testing.T) {
	input := "name,city\nAlice,NYC\n\nlonely\n , \nCarol,Rome\n"

	people, err := ProcessReader(strings.NewReader(input), parsePerson, ProcessorOptions{MinFields: 2})
	require.NoError(t, err)

	assert.Equal(t, []person{{Name: "Alice", City: "NYC"}, {Name: "Carol", City: "Rome"}}, people)
}

func TestProcessReader_TrimSpace(t *testing.T) {
	input := "name,city\n  Alice ,  NYC\n"

	people, err := ProcessReader(strings.NewReader(input), parsePerson, ProcessorOptions{MinFields: 2, TrimSpace: true})
	require.NoError(t, err)
	assert.Equal(t, []person{{Name: "Alice", City: "NYC"}}, people)
}

func TestProcessReader_InvalidRecords(t *testing.T) {
	input := "name,city\nAlice,NYC\nBob,\n"
	parser := func(record []string) (person, error) {
		if record[1] == "" {
			return person{}, errors.New("missing city")
		}
		return parsePerson(record)
	}

	_, err := ProcessReader(strings.NewReader(input), parser, ProcessorOptions{MinFields: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing city")

	people, err := ProcessReader(strings.NewReader(input), parser, ProcessorOptions{MinFields: 2, SkipInvalid: true})
	require.NoError(t, err)
	assert.Len(t, people, 1)
}

func TestProcessReader_ErrSkipRecord(t *testing.T) {
	input := "name,city\nAlice,NYC\n#comment,x\n"
	parser := func(record []string) (person, error) {
		if strings.HasPrefix(record[0], "#") {
			return person{}, ErrSkipRecord
		}
		return parsePerson(record)
	}

	people, err := ProcessReader(strings.NewReader(input), parser, ProcessorOptions{MinFields: 2})
	require.NoError(t, err)
	assert.Len(t, people, 1)
}

func TestProcessReader_HeaderOnly(t *testing.T) {
	people, err := ProcessReader(strings.NewReader("name,city\n"), parsePerson, ProcessorOptions{})
	require.NoError(t, err)
	assert.Empty(t, people)
}
