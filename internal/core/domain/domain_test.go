package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/refcache/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func TestKind_FileNamesAndPolicies(t *testing.T) {
	tests := []struct {
		kind   domain.Kind
		file   string
		policy domain.Policy
	}{
		{domain.KindConfig, "config", domain.PolicyGate},
		{domain.KindReferences, "references", domain.PolicyValidated},
		{domain.KindMethodMemberReferences, "class_method_references", domain.PolicyValidated},
		{domain.KindFileMemberReferences, "file_class_member_references", domain.PolicyValidated},
		{domain.KindIssues, "issues", domain.PolicyValidated},
		{domain.KindAnalyzedMethods, "analyzed_methods", domain.PolicyGated},
		{domain.KindFileMaps, "file_maps", domain.PolicyGated},
		{domain.KindTypeCoverage, "type_coverage", domain.PolicyGated},
	}

	require.Len(t, domain.AllKinds(), len(tests))

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.file, tt.kind.FileName())
			assert.Equal(t, tt.file, tt.kind.String())
			assert.Equal(t, tt.policy, tt.kind.Policy())
			assert.Equal(t, tt.kind != domain.KindConfig, tt.kind.IsMapping())
			assert.NotZero(t, tt.kind.Schema())

			parsed, err := domain.ParseKind(tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, parsed)
		})
	}
}

func TestParseKind_Unknown(t *testing.T) {
	_, err := domain.ParseKind("parser_cache")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownCacheKind.Error())

	assert.False(t, domain.Kind(0).Valid())
	assert.Equal(t, "unknown", domain.Kind(200).String())
}

func TestSet(t *testing.T) {
	s := domain.NewSet("b.php", "a.php")
	s.Add("c.php")
	s.Add("a.php")

	assert.True(t, s.Has("a.php"))
	assert.False(t, s.Has("d.php"))
	assert.Equal(t, []string{"a.php", "b.php", "c.php"}, s.Sorted())

	out, err := yaml.Marshal(map[string]domain.Set{"x.php": s})
	require.NoError(t, err)
	assert.Equal(t, "x.php:\n    - a.php\n    - b.php\n    - c.php\n", string(out))
}

func TestCoverage(t *testing.T) {
	stats := domain.TypeCoverageStats{
		"a.php": {Mixed: 1, Total: 4},
		"b.php": {Mixed: 1, Total: 6},
	}

	sum := stats.Sum()
	assert.Equal(t, domain.Coverage{Mixed: 2, Total: 10}, sum)
	assert.InDelta(t, 80.0, sum.Percentage(), 0.001)
	assert.InDelta(t, 100.0, domain.Coverage{}.Percentage(), 0.001)
}

func TestConfig_CacheEnabled(t *testing.T) {
	var nilCfg *domain.Config
	assert.False(t, nilCfg.CacheEnabled())
	assert.False(t, (&domain.Config{}).CacheEnabled())
	assert.True(t, (&domain.Config{CacheDir: "/tmp/cache"}).CacheEnabled())
}

func TestConfig_Validate(t *testing.T) {
	valid := domain.Config{Threads: 2, ErrorLevel: 2, PHPVersion: "8.2"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*domain.Config)
		want   error
	}{
		{"zero threads", func(c *domain.Config) { c.Threads = 0 }, domain.ErrInvalidThreads},
		{"error level too low", func(c *domain.Config) { c.ErrorLevel = 0 }, domain.ErrInvalidErrorLevel},
		{"error level too high", func(c *domain.Config) { c.ErrorLevel = 9 }, domain.ErrInvalidErrorLevel},
		{"patch version", func(c *domain.Config) { c.PHPVersion = "8.2.1" }, domain.ErrInvalidPHPVersion},
		{"word version", func(c *domain.Config) { c.PHPVersion = "latest" }, domain.ErrInvalidPHPVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want.Error())
		})
	}

	noVersion := valid
	noVersion.PHPVersion = ""
	assert.NoError(t, noVersion.Validate())
}
