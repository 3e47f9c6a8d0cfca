package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const sampleCapture = `name = "sample"

[[record]]
kind = "status"
payload = "00000001aabbcc"

[[record]]
kind = "ping"
payload = "30313233343536"

[[record]]
kind = "pong"
payload = "30313233343536"
`

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a starter capture file",
	Long: `Write a starter capture file.

Example:
  packdump sample -o capture.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			fmt.Print(sampleCapture)
			return nil
		}
		if err := os.WriteFile(out, []byte(sampleCapture), 0o644); err != nil {
			return fmt.Errorf("write sample: %w", err)
		}
		fmt.Printf("wrote %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().StringP("out", "o", "", "File to write (default stdout)")
}
