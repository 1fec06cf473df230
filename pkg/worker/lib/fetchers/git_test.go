package fetchers

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/codequal/codequal-api/pkg/worker/lib/executors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestRepo(t *testing.T) string {
	dir, err := ioutil.TempDir("", "fetchers.git")
	require.NoError(t, err)

	sh, err := executors.NewTempDirShell(t.Name())
	require.NoError(t, err)
	defer sh.Clean()
	exec := sh.WithWorkDir(dir)

	ctx := context.Background()
	run := func(name string, args ...string) {
		_, err := exec.Run(ctx, name, args...)
		require.NoError(t, err)
	}

	run("git", "init", "-q")
	run("git", "checkout", "-q", "-b", "test-branch")
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0644))
	run("git", "add", "README.md")
	run("git", "-c", "user.name=test", "-c", "user.email=test@test", "commit", "-q", "-m", "initial")

	return dir
}

func TestGitFetch(t *testing.T) {
	repoDir := initTestRepo(t)
	defer os.RemoveAll(repoDir)

	exec, err := executors.NewTempDirShell(t.Name())
	require.NoError(t, err)
	defer exec.Clean()

	repo := &Repo{
		Ref:      "test-branch",
		CloneURL: "file://" + repoDir,
	}
	err = NewGit().Fetch(context.Background(), repo, exec)
	require.NoError(t, err)

	files, err := ioutil.ReadDir(exec.WorkDir())
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Name())
	}
	assert.Contains(t, names, "README.md")
}

func TestGitFetchUnknownBranch(t *testing.T) {
	repoDir := initTestRepo(t)
	defer os.RemoveAll(repoDir)

	exec, err := executors.NewTempDirShell(t.Name())
	require.NoError(t, err)
	defer exec.Clean()

	repo := &Repo{
		Ref:      "no-such-branch",
		CloneURL: "file://" + repoDir,
	}
	err = NewGit().Fetch(context.Background(), repo, exec)
	require.Error(t, err)
	assert.Equal(t, ErrNoBranchOrRepo, errors.Cause(err))
}
