package cli

import (
	"strings"

	"github.com/skyburst/gbmfn/pkg/gbmfn"
	"github.com/spf13/cobra"
)

// completeDetectorNames provides shell completion for detector flag values:
// short codes, full names, and the "all" token.
func completeDetectorNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	candidates := []string{gbmfn.AllDetectorsToken}
	for _, d := range gbmfn.AllDetectors() {
		candidates = append(candidates, d.Code(), d.Name())
	}

	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(toComplete)) {
			matches = append(matches, c)
		}
	}

	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for directory arguments.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}
