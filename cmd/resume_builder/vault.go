package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/store"
)

var (
	vaultDir        string
	vaultPassphrase string
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage the encrypted local resume vault",
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a structured resume into the encrypted vault",
	RunE:  runSave,
}

var loadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Load a resume from the encrypted vault",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resumes in the encrypted vault",
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a resume from the encrypted vault",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var (
	saveResumeFile string
	loadOutFile    string
)

func init() {
	for _, cmd := range []*cobra.Command{saveCmd, loadCmd, listCmd, deleteCmd} {
		cmd.Flags().StringVar(&vaultDir, "vault", defaultVaultDir(), "Vault directory")
		cmd.Flags().StringVar(&vaultPassphrase, "passphrase", "", "Vault passphrase (or RESUME_VAULT_PASSPHRASE)")
		vaultCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(vaultCmd)

	saveCmd.Flags().StringVarP(&saveResumeFile, "resume", "r", "", "Path to structured resume JSON (required)")
	_ = saveCmd.MarkFlagRequired("resume")

	loadCmd.Flags().StringVarP(&loadOutFile, "out", "o", "", "Output JSON path (default: stdout)")
}

func defaultVaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".resume-vault"
	}
	return home + "/.resume-vault"
}

func openVault() (*store.Store, error) {
	passphrase := vaultPassphrase
	if passphrase == "" {
		passphrase = os.Getenv("RESUME_VAULT_PASSPHRASE")
	}
	if passphrase == "" {
		return nil, fmt.Errorf("a passphrase is required: use --passphrase or set RESUME_VAULT_PASSPHRASE")
	}
	return store.Open(vaultDir, passphrase)
}

func runSave(cmd *cobra.Command, args []string) error {
	resume, err := loadResumeJSON(saveResumeFile)
	if err != nil {
		return err
	}

	vault, err := openVault()
	if err != nil {
		return err
	}
	if err := vault.Save(resume); err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}

	fmt.Printf("Saved resume %s (version %d)\n", resume.ID, resume.Version)
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	vault, err := openVault()
	if err != nil {
		return err
	}

	resume, err := vault.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	out, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}
	return writeOutput(loadOutFile, out)
}

func runList(cmd *cobra.Command, args []string) error {
	vault, err := openVault()
	if err != nil {
		return err
	}

	entries, err := vault.List()
	if err != nil {
		return fmt.Errorf("failed to list resumes: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("Vault is empty")
		return nil
	}

	for _, entry := range entries {
		name := entry.Name
		if name == "" {
			name = "(no name)"
		}
		fmt.Printf("%s  v%d  %s  %s\n", entry.ID, entry.Version, entry.LastModified, name)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	vault, err := openVault()
	if err != nil {
		return err
	}
	if err := vault.Delete(args[0]); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	fmt.Printf("Deleted resume %s\n", args[0])
	return nil
}
