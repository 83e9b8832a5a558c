package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, args []string, lines ...string) (int, string, string) {
	t.Helper()

	stdin := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), args, stdin, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func Test_Run_CheckoutAndReturnScenario(t *testing.T) {
	// act
	code, out, _ := runScript(t, nil,
		"3", "B001", "M001",
		"3", "B001", "M001",
		"4", "B001", "M001",
		"5",
		"0",
	)

	// assert
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Library Name: City Public Library")
	assert.Contains(t, out, "Address: 123 Main St, Anytown")
	assert.Contains(t, out, "Book B001 checked out successfully to member M001.")
	assert.Contains(t, out, "Checkout failed: book is not available")
	assert.Contains(t, out, "Book B001 returned successfully by member M001.")
	assert.Contains(t, out, "\nCurrent Book Collection:\n")
	assert.Contains(t, out, "B001 | To Kill a Mockingbird by Harper Lee | Fiction | 1960 | Available | Type: Novel")
	assert.Contains(t, out, "B003 | A Brief History of Time by Stephen Hawking | Non-Fiction | 1988 | Available | Subject: Physics")
	assert.True(t, strings.HasSuffix(out, "Thank you for using the Library Management System.\n"))
}

func Test_Run_AddBookFallbacks(t *testing.T) {
	// act
	code, out, _ := runScript(t, []string{"-seed=false"},
		"1", "B010", "Field Notes", "Anon", "Nature", "next year", "X",
		"5",
		"0",
	)

	// assert
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Invalid year. Using current year.")
	assert.Contains(t, out, "Invalid book type. Adding as base Book type.")
	assert.Contains(t, out, "Book B010 added successfully.")
	assert.Contains(t, out, fmt.Sprintf("B010 | Field Notes by Anon | Nature | %d | Available\n", time.Now().Year()))
}

func Test_Run_RefusedCommandsAreReported(t *testing.T) {
	// act
	code, out, _ := runScript(t, nil,
		"1", "B001", "Duplicate", "Someone", "Fiction", "2000", "F", "Novel",
		"2", "M003", "Bad Email", "bad.example.com",
		"4", "B002", "M002",
		"3", "B404", "M001",
		"0",
	)

	// assert
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Could not add book: invalid input")
	assert.Contains(t, out, "Invalid member data: invalid input")
	assert.Contains(t, out, "Return failed: book not found")
	assert.Contains(t, out, "Checkout failed: book not found")
}

func Test_Run_MembersAndSearch(t *testing.T) {
	// act
	code, out, _ := runScript(t, nil,
		"2", "M003", "Ada Lovelace", "ada@example.com",
		"6",
		"7", "2", "orwell",
		"7", "1", "zzz",
		"7", "3",
		"7", "9",
		"0",
	)

	// assert
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Member M003 added successfully.")
	assert.Contains(t, out, "\nLibrary Members:\n")
	assert.Contains(t, out, "M001 | John Smith | john@example.com | Books borrowed: 0")
	assert.Contains(t, out, "M003 | Ada Lovelace | ada@example.com | Books borrowed: 0")
	assert.Contains(t, out, "B002 | 1984 by George Orwell | Fiction | 1949 | Available | Type: Novel")
	assert.Contains(t, out, "No matching books found.")
	assert.Contains(t, out, "Invalid search option.")
	assert.Equal(t, 2, strings.Count(out, "\nSearch Results:\n"), "author and available searches")
}

func Test_Run_ActivityLog(t *testing.T) {
	// act
	code, out, _ := runScript(t, nil,
		"3", "B002", "M001",
		"3", "B002", "M002",
		"8", "B002", "",
		"8", "", "",
		"0",
	)

	// assert
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "\nActivity Log:\n")
	assert.Contains(t, out, "| BookAddedToCatalog | B002 \"1984\" by George Orwell")
	assert.Contains(t, out, "| BookCheckedOut | B002 to M001")
	assert.Contains(t, out, "| CheckingOutBookFailed | B002 to M002: book is not available")
	assert.Contains(t, out, "3 entries, 1 refused")
	assert.Contains(t, out, "Please enter a book ID or a member ID.")
}

func Test_Run_InvalidChoices(t *testing.T) {
	// act
	code, out, _ := runScript(t, []string{"-seed=false"}, "abc", "9", "-1", "0")

	// assert
	assert.Equal(t, 0, code)
	assert.Equal(t, 3, strings.Count(out, "Invalid choice. Please enter a number between 0 and 8."))
}

func Test_Run_EndOfInputExitsCleanly(t *testing.T) {
	// act
	code, out, _ := runScript(t, []string{"-seed=false"}, "1", "B001")

	// assert
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Enter title: ")
	assert.NotContains(t, out, "added successfully")
}

func Test_Run_ConfigErrors(t *testing.T) {
	t.Run("unknown flag", func(t *testing.T) {
		code, _, stderr := runScript(t, []string{"-nope"}, "0")

		assert.Equal(t, 2, code)
		assert.Contains(t, stderr, "flag provided but not defined")
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("LIBRARY_LOG_LEVEL", "chatty")

		code, _, stderr := runScript(t, nil, "0")

		assert.Equal(t, 2, code)
		assert.Contains(t, stderr, "invalid config")
	})
}

func Test_Run_WithObservabilityAndDebugLogs(t *testing.T) {
	// act
	code, out, stderr := runScript(t, []string{"-otel", "-log-level", "debug", "-log-format", "json"},
		"3", "B001", "M001",
		"0",
	)

	// assert
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Book B001 checked out successfully to member M001.")
	assert.Contains(t, stderr, `"msg":"command handler completed"`)
	assert.Contains(t, stderr, `"command_type":"CheckoutBook"`)
	assert.Contains(t, stderr, `"msg":"span ended"`)
	assert.Contains(t, stderr, `"name":"lending_command_calls_total"`)
	assert.Regexp(t, `"msg":"otel log records","count":[1-9]`, stderr, "bridged records should reach the registered LoggerProvider")
}
