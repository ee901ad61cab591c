// Package main provides the entry point for the open-pr CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/open-pr/internal/logger"
	"github.com/sgaunet/open-pr/internal/security"
	"github.com/sgaunet/open-pr/internal/titles"
	"github.com/sgaunet/open-pr/internal/ui"
	"github.com/sgaunet/open-pr/pkg/browser"
	"github.com/sgaunet/open-pr/pkg/commits"
	"github.com/sgaunet/open-pr/pkg/config"
	"github.com/sgaunet/open-pr/pkg/git"
	"github.com/sgaunet/open-pr/pkg/platform"
	"github.com/sgaunet/open-pr/pkg/repourl"
	"github.com/spf13/cobra"
)

// fallbackTargetBranch is used when no remote-tracking default branch exists.
const fallbackTargetBranch = "main"

// version is set at build time via ldflags.
var version = "dev"

var (
	branchFlag      string
	targetFlag      string
	remoteFlag      string
	forceRemoteFlag bool
	serviceFlag     string
	printOnlyFlag   bool
	titleFlag       string
	descriptionFlag string
	draftFlag       bool
	linkFlag        bool
	fromCommitFlag  bool
	interactiveFlag bool
	logLevel        string
	log             *bullets.Logger
)

var rootCmd = &cobra.Command{
	Use:   "open-pr",
	Short: "Open a pull request creation page for the current branch",
	Long: `open-pr inspects the local git repository, infers the active branch, remote,
and hosting service (GitHub, GitLab, Bitbucket, Azure DevOps), and opens the
browser on a pre-filled pull request creation page. It never talks to the
hosting service itself: the page it opens is where the request is created.`,
	Version: version,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := runOpenPR(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().StringVarP(&branchFlag, "branch", "b", "",
		"branch to create the pull request from (defaults to the current branch)")
	rootCmd.Flags().StringVarP(&targetFlag, "target", "t", "",
		"target branch for the pull request (usually main or master)")
	rootCmd.Flags().StringVarP(&remoteFlag, "remote", "r", "",
		"remote to use (defaults to upstream if it exists, otherwise origin)")
	rootCmd.Flags().BoolVarP(&forceRemoteFlag, "force-remote", "f", false,
		"force using the default remote, ignoring upstream even if it exists")
	rootCmd.Flags().StringVarP(&serviceFlag, "service", "s", "",
		"git hosting service (github, gitlab, bitbucket, azure)")
	rootCmd.Flags().BoolVarP(&printOnlyFlag, "print-only", "p", false,
		"just print the URL without opening the browser")
	rootCmd.Flags().StringVarP(&titleFlag, "title", "T", "",
		"title for the pull request")
	rootCmd.Flags().StringVarP(&descriptionFlag, "description", "d", "",
		"description for the pull request")
	rootCmd.Flags().BoolVar(&draftFlag, "draft", false,
		"mark the pull request as draft/WIP")
	rootCmd.Flags().BoolVar(&linkFlag, "link", false,
		"output only the link, suppressing all logging (for scripts)")
	rootCmd.Flags().BoolVar(&fromCommitFlag, "from-commit", false,
		"take title and description from the HEAD commit message")
	rootCmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false,
		"pick the title commit and edit title/description interactively")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info",
		"Set log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runOpenPR(cmd *cobra.Command) error {
	if linkFlag {
		log = logger.NoLogger()
	} else {
		log = logger.NewLogger(logLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyConfig(cmd, cfg)

	repo, err := git.OpenRepository(".")
	if err != nil {
		return err
	}

	sourceBranch, err := resolveSourceBranch(repo)
	if err != nil {
		return err
	}
	log.WithField("branch", sourceBranch).Info("Source branch")

	remoteName := repo.ResolveRemote(remoteFlag, forceRemoteFlag)
	remoteURL, err := repo.GetRemoteURL(remoteName)
	if err != nil {
		return fmt.Errorf("failed to get remote URL: %w", err)
	}
	log.WithField("remote", remoteName).WithField("url", security.RedactURL(remoteURL)).Info("Remote resolved")

	service, err := resolveService(remoteURL)
	if err != nil {
		return err
	}
	log.WithField("service", service).Info("Hosting service")

	req, err := repositoryCoordinates(service, remoteURL)
	if err != nil {
		return err
	}
	req.Service = service
	req.SourceBranch = sourceBranch
	req.TargetBranch = resolveTargetBranch(repo, remoteName)
	req.Draft = draftFlag

	req.Title, req.Description, err = resolveMessage(repo, sourceBranch, req.TargetBranch, remoteName)
	if err != nil {
		return err
	}

	prURL, err := platform.BuildURL(req)
	if err != nil {
		return err
	}

	return deliverURL(prURL)
}

// applyConfig fills in flags the user did not set from the configuration
// file. Explicit flags always win.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("remote") && cfg.Remote != "" {
		remoteFlag = cfg.Remote
	}
	if !cmd.Flags().Changed("target") && cfg.Target != "" {
		targetFlag = cfg.Target
	}
	if !cmd.Flags().Changed("service") && cfg.Service != "" {
		serviceFlag = cfg.Service
	}
	if !cmd.Flags().Changed("draft") && cfg.Draft {
		draftFlag = true
	}
	if !cmd.Flags().Changed("print-only") && cfg.PrintOnly {
		printOnlyFlag = true
	}
}

func resolveSourceBranch(repo *git.Repository) (string, error) {
	if branchFlag != "" {
		return branchFlag, nil
	}

	branch, err := repo.GetCurrentBranch()
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return branch, nil
}

// resolveTargetBranch prefers the explicit flag (or config), then the
// remote's default branch, then the fixed fallback.
func resolveTargetBranch(repo *git.Repository, remoteName string) string {
	if targetFlag != "" {
		return targetFlag
	}

	branch, err := repo.GetDefaultBranch(remoteName)
	if err != nil {
		log.WithField("remote", remoteName).WithField("fallback", fallbackTargetBranch).
			Debug("No default branch found on remote, using fallback")
		return fallbackTargetBranch
	}
	return branch
}

func resolveService(remoteURL string) (platform.Platform, error) {
	if serviceFlag != "" {
		service, err := platform.FromString(serviceFlag)
		if err != nil {
			return platform.Unknown, err
		}
		return service, nil
	}
	return platform.Detect(remoteURL), nil
}

// repositoryCoordinates parses owner and repository out of the remote URL.
// Azure DevOps remotes carry an organization and project that do not fit the
// owner/repo shape, so they get their dedicated parser first.
func repositoryCoordinates(service platform.Platform, remoteURL string) (platform.Request, error) {
	if service == platform.AzureDevOps {
		org, project, repoName, err := repourl.ParseAzure(remoteURL)
		if err == nil {
			return platform.Request{Owner: org, Repo: repoName, Org: org, Project: project}, nil
		}
		log.WithField("error", err.Error()).Debug("Remote is not a canonical Azure DevOps URL, using generic parse")
	}

	owner, repoName, err := repourl.Parse(remoteURL)
	if err != nil {
		return platform.Request{}, err
	}
	return platform.Request{Owner: owner, Repo: repoName}, nil
}

// resolveMessage decides the title and description for the pull request.
// Explicit flags win; --interactive and --from-commit derive them from the
// branch's commits.
func resolveMessage(repo *git.Repository, sourceBranch, targetBranch, remoteName string) (string, string, error) {
	title, description := titleFlag, descriptionFlag

	switch {
	case interactiveFlag:
		return interactiveMessage(repo, sourceBranch, targetBranch, remoteName)
	case fromCommitFlag:
		headTitle, headBody, err := messageFromHeadCommit(repo)
		if err != nil {
			return "", "", err
		}
		if title == "" {
			title = headTitle
		}
		if description == "" {
			description = headBody
		}
	}

	return title, description, nil
}

func messageFromHeadCommit(repo *git.Repository) (string, string, error) {
	message, err := repo.GetLatestCommitMessage()
	if err != nil {
		return "", "", fmt.Errorf("failed to get commit message: %w", err)
	}

	title, body := commits.ParseCommitMessage(message)
	return title, body, nil
}

// interactiveMessage builds the title and description interactively: a commit
// of the branch seeds the suggestion (explicit flags win, branch name as the
// last resort), then both fields are edited in the terminal.
func interactiveMessage(repo *git.Repository, sourceBranch, targetBranch, remoteName string) (string, string, error) {
	suggestedTitle := titleFlag
	suggestedBody := descriptionFlag

	if suggestedTitle == "" {
		selection, err := selectCommitMessage(repo, sourceBranch, targetBranch, remoteName)
		switch {
		case err == nil:
			suggestedTitle = selection.Title
			if suggestedBody == "" {
				suggestedBody = selection.Body
			}
		case errors.Is(err, commits.ErrNoCommits), errors.Is(err, commits.ErrAllCommitsInvalid):
			log.WithField("branch", sourceBranch).Debug("No usable commit message, suggesting title from branch name")
			suggestedTitle = titles.FromBranch(sourceBranch)
		default:
			return "", "", err
		}
	}

	editor := ui.NewEditor()

	title, err := editor.EditTitle(suggestedTitle)
	if err != nil {
		return "", "", err
	}

	description, err := editor.EditDescription(suggestedBody)
	if err != nil {
		return "", "", err
	}

	return title, description, nil
}

// selectCommitMessage offers the commits unique to the source branch and
// returns the chosen message. When the target branch cannot be resolved
// locally the full branch history is offered instead.
func selectCommitMessage(repo *git.Repository, sourceBranch, targetBranch, remoteName string) (commits.MessageSelection, error) {
	retriever := commits.NewRetriever(repo.Underlying())
	retriever.SetLogger(log)

	branchCommits, err := retriever.CommitsSince(sourceBranch, targetBranch, remoteName)
	if err != nil && !errors.Is(err, commits.ErrNoCommits) {
		log.WithField("targetBranch", targetBranch).WithField("error", err.Error()).
			Debug("Target branch not resolvable, using full branch history")
		branchCommits, err = retriever.GetCommits(sourceBranch)
	}
	if err != nil {
		return commits.MessageSelection{}, err
	}

	selector := commits.NewSelector(commits.NewRenderer())
	selector.SetLogger(log)

	return selector.GetMessageForPR(branchCommits, "")
}

// deliverURL is the single output path: bare URL on stdout for -p/--link,
// otherwise hand off to the system browser.
func deliverURL(prURL string) error {
	if printOnlyFlag || linkFlag {
		fmt.Println(prURL)
		return nil
	}

	log.WithField("url", prURL).Info("Opening pull request page")
	if err := browser.Open(prURL); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
