package editlink

import (
	"errors"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// DefaultBranch is assumed when HEAD is detached.
const DefaultBranch = "main"

// Suggestion is an edit-link setup derived from a local checkout.
type Suggestion struct {
	Forge   Forge
	Remote  string
	RepoURL string
	Branch  string
	Pattern string
}

// Suggest inspects the git repository containing dir and proposes an
// editLink pattern for markdown under srcDir (relative to dir), using the
// "origin" remote and the checked-out branch.
func Suggest(dir, srcDir string) (*Suggestion, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "open git repository").WithContext("dir", dir).Build()
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "read origin remote").WithContext("dir", dir).Build()
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, ferrors.GitError("origin remote has no URL").WithContext("dir", dir).Build()
	}
	forge, webURL, ok := Detect(urls[0])
	if !ok {
		return nil, ferrors.GitError("origin remote is not a hosted repository").WithContext("remote", urls[0]).Build()
	}

	docsDir, err := docsPathInRepo(repo, dir, srcDir)
	if err != nil {
		return nil, err
	}

	branch := currentBranch(repo)
	return &Suggestion{
		Forge:   forge,
		Remote:  urls[0],
		RepoURL: webURL,
		Branch:  branch,
		Pattern: Pattern(forge, webURL, branch, docsDir),
	}, nil
}

// currentBranch reads HEAD without resolving it, so an unborn branch in a
// fresh repository still reports its name.
func currentBranch(repo *git.Repository) string {
	head, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return DefaultBranch
	}
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		return head.Target().Short()
	}
	return DefaultBranch
}

func docsPathInRepo(repo *git.Repository, dir, srcDir string) (string, error) {
	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return "", ferrors.GitError("bare repository has no working tree").WithContext("dir", dir).Build()
		}
		return "", ferrors.WrapError(err, ferrors.CategoryGit, "open worktree").Build()
	}
	root, err := filepath.EvalSymlinks(wt.Filesystem.Root())
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "resolve worktree root").Build()
	}
	abs, err := filepath.Abs(filepath.Join(dir, srcDir))
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "resolve content directory").Build()
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "content directory outside repository").Build()
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}
