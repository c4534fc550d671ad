package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	acaenvcmd "github.com/orien/acaenv/cmd"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func main() {
	outputDir := flag.String("out", filepath.Join("docs", "cli"), "directory the markdown pages are written to")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}

	if err := removePages(*outputDir); err != nil {
		log.Fatalf("clean output directory: %v", err)
	}

	root := acaenvcmd.RootCommand()
	written, err := writePages(root, *outputDir)
	if err != nil {
		log.Fatalf("generate markdown documentation: %v", err)
	}
	log.Printf("wrote %d page(s) to %s", written, *outputDir)
}

// removePages deletes previously generated pages so removed commands do not linger
func removePages(dir string) error {
	pages, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return err
	}
	for _, page := range pages {
		if err := os.Remove(page); err != nil {
			return err
		}
	}
	return nil
}

// writePages renders one page per visible command, depth first
func writePages(cmd *cobra.Command, dir string) (int, error) {
	cmd.DisableAutoGenTag = true

	written := 0
	for _, child := range cmd.Commands() {
		if !child.IsAvailableCommand() || child.IsAdditionalHelpTopicCommand() {
			continue
		}
		n, err := writePages(child, dir)
		if err != nil {
			return written, err
		}
		written += n
	}

	path := filepath.Join(dir, pageName(cmd))
	f, err := os.Create(path)
	if err != nil {
		return written, err
	}
	defer f.Close()

	if _, err := f.WriteString(frontMatter(cmd)); err != nil {
		return written, err
	}
	if err := doc.GenMarkdownCustom(cmd, f, linkHandler); err != nil {
		return written, fmt.Errorf("render %s: %w", cmd.CommandPath(), err)
	}
	return written + 1, nil
}

func pageName(cmd *cobra.Command) string {
	return strings.ReplaceAll(cmd.CommandPath(), " ", "_") + ".md"
}

func frontMatter(cmd *cobra.Command) string {
	return fmt.Sprintf("---\ntitle: %s\ndescription: %q\n---\n\n", cmd.CommandPath(), cmd.Short)
}

// linkHandler turns "acaenv_deploy.md" into the site slug "acaenv-deploy"
func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ToLower(strings.ReplaceAll(base, "_", "-"))
}
