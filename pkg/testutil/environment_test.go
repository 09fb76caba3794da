package testutil_test

import (
	"testing"

	"github.com/arthur-debert/relayout/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTestEnvironment_RoundTripsTree(t *testing.T) {
	for _, envType := range []testutil.EnvType{testutil.EnvMemoryOnly, testutil.EnvIsolated} {
		env := testutil.NewTestEnvironment(t, envType)
		tree := testutil.FileTree{
			"app/app.js":          "export default App;",
			"app/routes/index.js": "route",
			"package.json":        "{}",
		}

		env.WithFileTree(tree)

		env.AssertFileTree(tree)
		assert.True(t, env.Exists("app/routes"))
		assert.False(t, env.Exists("src"))
		assert.Equal(t, []string{"app/app.js", "app/routes/index.js", "package.json"}, tree.Paths())
	}
}
