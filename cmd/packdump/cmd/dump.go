package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/danmuck/packcast/internal/config"
	"github.com/danmuck/packcast/packet"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Classify and dump the records of a capture file",
	Long: `Classify and dump the records of a capture file.

Example:
  packdump dump -f capture.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")

		capture, err := config.LoadCapture(path)
		if err != nil {
			return err
		}

		run := ksuid.New().String()
		log.Info().
			Str("run", run).
			Str("capture", capture.Name).
			Int("records", len(capture.Packets)).
			Msg("dumping capture")

		for i := range capture.Packets {
			fmt.Printf("record %d\n", i)
			for _, line := range describe(&capture.Packets[i]) {
				fmt.Println(line)
			}
		}
		return nil
	},
}

// describe renders one record: raw bytes first, then the verdict of every
// declared relation.
func describe(p *packet.Packet) []string {
	lines := []string{
		fmt.Sprintf("  raw    % x  kind=%s", p.Encode(), p.Kind()),
	}

	if view, err := packet.Status.View(p); err == nil {
		lines = append(lines, fmt.Sprintf("  status node=%d status=[%02x %02x %02x]",
			view.NodeID(), view.Status(0), view.Status(1), view.Status(2)))
	} else {
		lines = append(lines, fmt.Sprintf("  status rejected: %v", err))
	}

	if view, err := packet.Ping.View(p); err == nil {
		echo := view.Echo()
		lines = append(lines, fmt.Sprintf("  ping   echo=% x", echo[:]))
	} else {
		lines = append(lines, fmt.Sprintf("  ping   rejected: %v", err))
	}

	if _, err := packet.Pong.View(p); err == nil {
		lines = append(lines, "  pong   ok")
	} else {
		lines = append(lines, fmt.Sprintf("  pong   rejected: %v", err))
	}

	return lines
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringP("file", "f", "capture.toml", "Capture file to read")
}
