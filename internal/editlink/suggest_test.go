package editlink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

func initRepo(t *testing.T, branch string, remotes ...string) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName(branch)},
	})
	require.NoError(t, err)
	if len(remotes) > 0 {
		_, err = repo.CreateRemote(&gitcfg.RemoteConfig{Name: git.DefaultRemoteName, URLs: remotes})
		require.NoError(t, err)
	}
	return dir
}

func TestSuggestFromCheckout(t *testing.T) {
	dir := initRepo(t, "trunk", "git@github.com:acme/handbook.git")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "site", "docs"), 0o755))

	s, err := Suggest(filepath.Join(dir, "site"), "docs")
	require.NoError(t, err)
	assert.Equal(t, ForgeGitHub, s.Forge)
	assert.Equal(t, "https://github.com/acme/handbook", s.RepoURL)
	assert.Equal(t, "trunk", s.Branch)
	assert.Equal(t, "https://github.com/acme/handbook/edit/trunk/site/docs/:path", s.Pattern)
}

func TestSuggestContentAtRepoRoot(t *testing.T) {
	dir := initRepo(t, "main", "https://gitlab.com/acme/handbook.git")

	s, err := Suggest(dir, ".")
	require.NoError(t, err)
	assert.Equal(t, "https://gitlab.com/acme/handbook/-/edit/main/:path", s.Pattern)
}

func TestSuggestErrors(t *testing.T) {
	t.Run("not a repository", func(t *testing.T) {
		_, err := Suggest(t.TempDir(), "docs")
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryGit))
	})

	t.Run("no origin", func(t *testing.T) {
		_, err := Suggest(initRepo(t, "main"), "docs")
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryGit))
	})

	t.Run("local origin", func(t *testing.T) {
		_, err := Suggest(initRepo(t, "main", "/srv/git/handbook.git"), "docs")
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryGit))
	})
}
