package editlink

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/config"
)

// Forge identifies a git hosting product by its edit URL layout.
type Forge string

const (
	ForgeGitHub    Forge = "github"
	ForgeGitLab    Forge = "gitlab"
	ForgeForgejo   Forge = "forgejo"
	ForgeBitbucket Forge = "bitbucket"
)

// Detect derives the forge and the repository web URL from a clone URL.
// scp-style SSH remotes (git@host:owner/repo.git) are supported. Local
// paths and file:// remotes have no web UI and return ok=false.
func Detect(remoteURL string) (forge Forge, webURL string, ok bool) {
	normalized := normalizeSSHURL(strings.TrimSpace(remoteURL))
	u, err := url.Parse(normalized)
	if err != nil || u.Host == "" {
		return "", "", false
	}
	switch u.Scheme {
	case "http", "https", "ssh", "git":
	default:
		return "", "", false
	}

	fullName := strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")
	if fullName == "" {
		return "", "", false
	}
	host := u.Hostname()

	switch {
	case strings.Contains(host, "github."):
		forge = ForgeGitHub
	case strings.Contains(host, "gitlab."):
		forge = ForgeGitLab
	case host == "bitbucket.org":
		forge = ForgeBitbucket
	default:
		// Self-hosted instances are most often Forgejo/Gitea.
		forge = ForgeForgejo
	}

	// SSH ports never apply to the web UI; HTTP ports do.
	scheme, webHost := "https", host
	if u.Scheme == "http" || u.Scheme == "https" {
		scheme, webHost = u.Scheme, u.Host
	}
	return forge, fmt.Sprintf("%s://%s/%s", scheme, webHost, fullName), true
}

// normalizeSSHURL converts scp-style SSH URLs to ssh:// form for parsing.
func normalizeSSHURL(repoURL string) string {
	if strings.Contains(repoURL, "://") {
		return repoURL
	}
	at := strings.Index(repoURL, "@")
	colon := strings.Index(repoURL, ":")
	if at < 0 || colon < at {
		return repoURL
	}
	return "ssh://" + repoURL[:colon] + "/" + repoURL[colon+1:]
}

// Pattern builds an editLink.pattern for documents under docsDir (relative
// to the repository root) on branch.
func Pattern(forge Forge, webURL, branch, docsDir string) string {
	webURL = strings.TrimSuffix(webURL, "/")
	prefix := strings.Trim(path.Clean("/"+docsDir), "/")
	if prefix != "" {
		prefix += "/"
	}
	file := prefix + config.PathPlaceholder

	switch forge {
	case ForgeGitHub:
		return fmt.Sprintf("%s/edit/%s/%s", webURL, branch, file)
	case ForgeGitLab:
		return fmt.Sprintf("%s/-/edit/%s/%s", webURL, branch, file)
	case ForgeForgejo:
		return fmt.Sprintf("%s/_edit/%s/%s", webURL, branch, file)
	case ForgeBitbucket:
		return fmt.Sprintf("%s/src/%s/%s?mode=edit", webURL, branch, file)
	default:
		return ""
	}
}
