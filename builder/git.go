package builder

import (
	"encoding/json"

	"github.com/minagishl/command-builder/command"
)

// Reset and push-force modes of the version control builder.
const (
	ResetSoft  = "soft"
	ResetMixed = "mixed"
	ResetHard  = "hard"

	ForceNone  = "none"
	ForceLease = "lease"
	ForceFull  = "force"
)

// GitOptions is the flat options record of the version control builder.
// Only the fields of the selected subcommand contribute to the output;
// the rest stay in the record untouched.
type GitOptions struct {
	RepoPath string `json:"repoPath"`
	Command  string `json:"command"`

	CloneURL    string `json:"cloneUrl"`
	CloneDir    string `json:"cloneDir"`
	CloneDepth  string `json:"cloneDepth"`
	CloneBranch string `json:"cloneBranch"`
	Recursive   bool   `json:"recursive"`

	AddPath string `json:"addPath"`
	AddAll  bool   `json:"addAll"`

	Message    string `json:"message"`
	Amend      bool   `json:"amend"`
	AllowEmpty bool   `json:"allowEmpty"`
	Signoff    bool   `json:"signoff"`

	Remote      string `json:"remote"`
	Branch      string `json:"branch"`
	ForceMode   string `json:"forceMode"`
	PushTags    bool   `json:"pushTags"`
	SetUpstream bool   `json:"setUpstream"`
	Rebase      bool   `json:"rebase"`
	Prune       bool   `json:"prune"`

	Target    string `json:"target"`
	NewBranch bool   `json:"newBranch"`

	BranchName   string `json:"branchName"`
	DeleteBranch bool   `json:"deleteBranch"`
	ListAll      bool   `json:"listAll"`

	MergeBranch string `json:"mergeBranch"`
	NoFF        bool   `json:"noFF"`

	Oneline bool   `json:"oneline"`
	Graph   bool   `json:"graph"`
	Limit   string `json:"limit"`

	Staged bool `json:"staged"`

	StashOp      string `json:"stashOp"`
	StashMessage string `json:"stashMessage"`

	ResetMode   string `json:"resetMode"`
	ResetTarget string `json:"resetTarget"`

	TagName    string `json:"tagName"`
	TagMessage string `json:"tagMessage"`
	DeleteTag  bool   `json:"deleteTag"`

	Extra string `json:"extra"`
}

type gitBuilder struct{}

func (gitBuilder) Info() Info {
	return Info{
		Key:         "git",
		Title:       "Git",
		Tool:        "git",
		Description: "Assemble git subcommands with the right flags",
		Available:   true,
	}
}

func (gitBuilder) NewOptions() any {
	return &GitOptions{
		Command:   "status",
		AddPath:   ".",
		Remote:    "origin",
		ForceMode: ForceNone,
		ResetMode: ResetMixed,
		StashOp:   "push",
	}
}

func (gitBuilder) Fields() []Field {
	return []Field{
		{Key: "repoPath", Label: "Repository path", Type: FieldText, Placeholder: "~/projects/app", Group: "Repository"},
		{Key: "command", Label: "Subcommand", Type: FieldSelect, Choices: []Choice{
			{Value: "status", Label: "status"}, {Value: "init", Label: "init"}, {Value: "clone", Label: "clone"},
			{Value: "add", Label: "add"}, {Value: "commit", Label: "commit"}, {Value: "push", Label: "push"},
			{Value: "pull", Label: "pull"}, {Value: "fetch", Label: "fetch"}, {Value: "checkout", Label: "checkout"},
			{Value: "branch", Label: "branch"}, {Value: "merge", Label: "merge"}, {Value: "log", Label: "log"},
			{Value: "diff", Label: "diff"}, {Value: "stash", Label: "stash"}, {Value: "reset", Label: "reset"},
			{Value: "tag", Label: "tag"},
		}, Group: "Repository"},
		{Key: "cloneUrl", Label: "Clone URL", Type: FieldText, Placeholder: "https://github.com/user/repo.git", Group: "Clone"},
		{Key: "cloneDir", Label: "Target directory", Type: FieldText, Group: "Clone"},
		{Key: "cloneDepth", Label: "Depth", Type: FieldText, Placeholder: "1", Group: "Clone"},
		{Key: "cloneBranch", Label: "Branch (-b)", Type: FieldText, Group: "Clone"},
		{Key: "recursive", Label: "Recurse submodules", Type: FieldCheckbox, Group: "Clone"},
		{Key: "addPath", Label: "Path to add", Type: FieldText, Group: "Add"},
		{Key: "addAll", Label: "Add all (-A)", Type: FieldCheckbox, Group: "Add"},
		{Key: "message", Label: "Commit message", Type: FieldText, Group: "Commit"},
		{Key: "amend", Label: "Amend previous commit", Type: FieldCheckbox, Group: "Commit"},
		{Key: "allowEmpty", Label: "Allow empty commit", Type: FieldCheckbox, Group: "Commit"},
		{Key: "signoff", Label: "Sign off", Type: FieldCheckbox, Group: "Commit"},
		{Key: "remote", Label: "Remote", Type: FieldText, Group: "Remote"},
		{Key: "branch", Label: "Branch", Type: FieldText, Group: "Remote"},
		{Key: "forceMode", Label: "Force push", Type: FieldSelect, Choices: []Choice{
			{Value: ForceNone, Label: "No"}, {Value: ForceLease, Label: "--force-with-lease"}, {Value: ForceFull, Label: "--force"},
		}, Group: "Push"},
		{Key: "pushTags", Label: "Push tags", Type: FieldCheckbox, Group: "Push"},
		{Key: "setUpstream", Label: "Set upstream (-u)", Type: FieldCheckbox, Group: "Push"},
		{Key: "rebase", Label: "Rebase on pull", Type: FieldCheckbox, Group: "Pull"},
		{Key: "prune", Label: "Prune on fetch", Type: FieldCheckbox, Group: "Pull"},
		{Key: "target", Label: "Checkout target", Type: FieldText, Placeholder: "main", Group: "Checkout"},
		{Key: "newBranch", Label: "Create branch (-b)", Type: FieldCheckbox, Group: "Checkout"},
		{Key: "branchName", Label: "Branch name", Type: FieldText, Group: "Branch"},
		{Key: "deleteBranch", Label: "Delete branch (-d)", Type: FieldCheckbox, Group: "Branch"},
		{Key: "listAll", Label: "List all (-a)", Type: FieldCheckbox, Group: "Branch"},
		{Key: "mergeBranch", Label: "Branch to merge", Type: FieldText, Group: "Merge"},
		{Key: "noFF", Label: "No fast-forward (--no-ff)", Type: FieldCheckbox, Group: "Merge"},
		{Key: "oneline", Label: "One line per commit", Type: FieldCheckbox, Group: "Log"},
		{Key: "graph", Label: "Graph", Type: FieldCheckbox, Group: "Log"},
		{Key: "limit", Label: "Limit (-n)", Type: FieldText, Placeholder: "20", Group: "Log"},
		{Key: "staged", Label: "Staged changes (--cached)", Type: FieldCheckbox, Group: "Diff"},
		{Key: "stashOp", Label: "Stash operation", Type: FieldSelect, Choices: []Choice{
			{Value: "push", Label: "push"}, {Value: "pop", Label: "pop"}, {Value: "apply", Label: "apply"}, {Value: "list", Label: "list"}, {Value: "drop", Label: "drop"},
		}, Group: "Stash"},
		{Key: "stashMessage", Label: "Stash message", Type: FieldText, Group: "Stash"},
		{Key: "resetMode", Label: "Reset mode", Type: FieldSelect, Choices: []Choice{
			{Value: ResetSoft, Label: "soft"}, {Value: ResetMixed, Label: "mixed"}, {Value: ResetHard, Label: "hard"},
		}, Group: "Reset"},
		{Key: "resetTarget", Label: "Reset target", Type: FieldText, Placeholder: "HEAD~1", Group: "Reset"},
		{Key: "tagName", Label: "Tag name", Type: FieldText, Placeholder: "v1.0.0", Group: "Tag"},
		{Key: "tagMessage", Label: "Tag message (annotated)", Type: FieldText, Group: "Tag"},
		{Key: "deleteTag", Label: "Delete tag (-d)", Type: FieldCheckbox, Group: "Tag"},
		{Key: "extra", Label: "Extra options", Type: FieldText, Group: "Extra"},
	}
}

func (gitBuilder) Presets() []Preset {
	return []Preset{
		{Key: "amend", Name: "Amend last commit", Description: "Amend without changing the message",
			Overlay: json.RawMessage(`{"command":"commit","amend":true,"message":""}`)},
		{Key: "push-lease", Name: "Safe force push", Description: "Force push with lease to the current branch",
			Overlay: json.RawMessage(`{"command":"push","forceMode":"lease"}`)},
		{Key: "shallow-clone", Name: "Shallow clone", Description: "Clone only the latest commit",
			Overlay: json.RawMessage(`{"command":"clone","cloneDepth":"1"}`)},
		{Key: "undo-soft", Name: "Undo last commit (soft)", Description: "Move HEAD back, keep changes staged",
			Overlay: json.RawMessage(`{"command":"reset","resetMode":"soft","resetTarget":"HEAD~1"}`)},
		{Key: "pretty-log", Name: "Pretty log", Description: "Graph of the last 20 commits, one line each",
			Overlay: json.RawMessage(`{"command":"log","oneline":true,"graph":true,"limit":"20"}`)},
	}
}

// Compile emits `cd "<repo>" && ` when a repository path is set, then the
// selected subcommand with its flags. --mixed is git's implicit reset
// default and stays suppressed.
func (gitBuilder) Compile(opts any) string {
	o := opts.(*GitOptions)

	sub := o.Command
	if sub == "" {
		sub = "status"
	}
	if sub == "clone" && o.CloneURL == "" {
		return "# Please specify a repository URL"
	}
	if sub == "tag" && o.TagName == "" {
		return "# Please specify a tag name"
	}

	l := command.New("git").Arg(sub)
	switch sub {
	case "clone":
		l.FlagValue("--depth", o.CloneDepth)
		l.FlagValue("-b", o.CloneBranch)
		l.FlagIf("--recurse-submodules", o.Recursive)
		l.Quoted(o.CloneURL)
		l.Quoted(o.CloneDir)
	case "add":
		if o.AddAll {
			l.Flag("-A")
		} else {
			l.Arg(o.AddPath)
		}
	case "commit":
		l.FlagQuoted("-m", o.Message)
		l.FlagIf("--amend", o.Amend)
		l.FlagIf("--allow-empty", o.AllowEmpty)
		l.FlagIf("--signoff", o.Signoff)
	case "push":
		// Exactly one force branch.
		switch o.ForceMode {
		case ForceLease:
			l.Flag("--force-with-lease")
		case ForceFull:
			l.Flag("--force")
		}
		l.FlagIf("--tags", o.PushTags)
		l.FlagIf("-u", o.SetUpstream)
		l.Arg(o.Remote)
		l.Arg(o.Branch)
	case "pull":
		l.FlagIf("--rebase", o.Rebase)
		l.Arg(o.Remote)
		l.Arg(o.Branch)
	case "fetch":
		l.FlagIf("--prune", o.Prune)
		l.Arg(o.Remote)
	case "checkout":
		l.FlagIf("-b", o.NewBranch)
		l.Arg(o.Target)
	case "branch":
		if o.DeleteBranch {
			l.Flag("-d")
		} else {
			l.FlagIf("-a", o.ListAll)
		}
		l.Arg(o.BranchName)
	case "merge":
		l.FlagIf("--no-ff", o.NoFF)
		l.Arg(o.MergeBranch)
	case "log":
		l.FlagIf("--oneline", o.Oneline)
		l.FlagIf("--graph", o.Graph)
		l.FlagValue("-n", o.Limit)
	case "diff":
		l.FlagIf("--cached", o.Staged)
	case "stash":
		op := o.StashOp
		if op == "" {
			op = "push"
		}
		l.Arg(op)
		if op == "push" {
			l.FlagQuoted("-m", o.StashMessage)
		}
	case "reset":
		switch o.ResetMode {
		case ResetSoft:
			l.Flag("--soft")
		case ResetHard:
			l.Flag("--hard")
		}
		l.Arg(o.ResetTarget)
	case "tag":
		if o.DeleteTag {
			l.Flag("-d")
			l.Arg(o.TagName)
			break
		}
		if o.TagMessage != "" {
			l.FlagValue("-a", o.TagName)
			l.FlagQuoted("-m", o.TagMessage)
		} else {
			l.Arg(o.TagName)
		}
	}
	l.Raw(o.Extra)

	cmd := l.String()
	if o.RepoPath != "" {
		return `cd "` + o.RepoPath + `" && ` + cmd
	}
	return cmd
}
