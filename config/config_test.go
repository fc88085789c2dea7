package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
filter:
  compilers:
    - "^gcc$"
    - "^([^/]*/)*cc$"
  source_files:
    - "\\.c$"
    - "\\.cc$"
  cancel_parameters:
    - "^-E$"
`

func parseTestDocument(t *testing.T, text string) *Document {
	doc, err := Parse([]byte(text), "test.yaml")
	require.NoError(t, err)
	return doc
}

func TestFilterRulesFromValidDocument(t *testing.T) {
	doc := parseTestDocument(t, validConfig)

	rules, err := doc.FilterRules()
	require.NoError(t, err)
	assert.Equal(t, []string{"^gcc$", "^([^/]*/)*cc$"}, rules.Compilers)
	assert.Equal(t, []string{`\.c$`, `\.cc$`}, rules.SourceFiles)
	assert.Equal(t, []string{"^-E$"}, rules.CancelParameters)
}

func TestEmptyRuleListsAreValid(t *testing.T) {
	doc := parseTestDocument(t, `
filter:
  compilers: []
  source_files: []
  cancel_parameters: []
`)

	rules, err := doc.FilterRules()
	require.NoError(t, err)
	assert.Empty(t, rules.Compilers)
	assert.Empty(t, rules.SourceFiles)
	assert.Empty(t, rules.CancelParameters)
}

func TestMissingFilterGroupIsAnError(t *testing.T) {
	doc := parseTestDocument(t, `other: {}`)

	_, err := doc.FilterRules()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filter group")
	assert.Contains(t, err.Error(), "test.yaml")
}

func TestMissingMemberIsAnError(t *testing.T) {
	doc := parseTestDocument(t, `
filter:
  compilers: ["^gcc$"]
  cancel_parameters: ["^-E$"]
`)

	_, err := doc.FilterRules()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"source_files"`)
}

func TestMistypedMemberIsAnErrorWithLine(t *testing.T) {
	doc := parseTestDocument(t, `filter:
  compilers: ["^gcc$"]
  source_files: "\\.c$"
  cancel_parameters: ["^-E$"]
`)

	_, err := doc.FilterRules()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"source_files"`)
	assert.Contains(t, err.Error(), "line 3")
}

func TestNonStringListItemIsAnError(t *testing.T) {
	doc := parseTestDocument(t, `
filter:
  compilers: ["^gcc$", 42]
  source_files: ["\\.c$"]
  cancel_parameters: []
`)

	_, err := doc.FilterRules()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"compilers"`)
}

func TestParseErrorMentionsDocumentName(t *testing.T) {
	_, err := Parse([]byte("filter: [\n  broken"), "broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestLoadFileReportsUnreadableFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read configuration")
}

func writeTestConfig(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "filter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0600))
	return path
}

func TestLoadFilterFromFile(t *testing.T) {
	f, err := LoadFilter(writeTestConfig(t, validConfig))
	require.NoError(t, err)

	compilers, sourceFiles, cancelParameters := f.Describe()
	assert.Equal(t, 2, compilers)
	assert.Equal(t, 2, sourceFiles)
	assert.Equal(t, 1, cancelParameters)
}

func TestLoadFilterRejectsMalformedRegex(t *testing.T) {
	path := writeTestConfig(t, `
filter:
  compilers: ["["]
  source_files: []
  cancel_parameters: []
`)

	_, err := LoadFilter(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")
}
