package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedEntries(t *testing.T) {
	got := SortedEntries(map[string]string{
		"10":     "ten",
		"2":      "two",
		"legacy": "kept from an older file",
		"1":      "one",
	})

	assert.Equal(t, []Entry{
		{Number: 1, Title: "one"},
		{Number: 2, Title: "two"},
		{Number: 10, Title: "ten"},
		{Number: 0, Title: "kept from an older file"},
	}, got)
	assert.Empty(t, SortedEntries(nil))
}
