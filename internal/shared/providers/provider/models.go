package provider

import "strings"

// Repo represents a provider repository.
// On any incompatible change don't forget to bump cache version in resolveRepoCached
type Repo struct {
	ID            int
	FullName      string
	IsPrivate     bool
	DefaultBranch string
	Language      string
}

func (r Repo) Name() string {
	return strings.Split(r.FullName, "/")[1]
}

func (r Repo) Owner() string {
	return strings.Split(r.FullName, "/")[0]
}

type Branch struct {
	Name          string
	HeadCommitSHA string
	CommitMessage string
	CommitAuthor  string
}
