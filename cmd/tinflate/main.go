package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JoshVarga/tinflate"
)

var (
	inputFile  string
	outputFile string
	raw        bool
	noVerify   bool
	tableFree  bool
)

var rootCmd = &cobra.Command{
	Use:   "tinflate",
	Short: "Decompress a zlib or raw DEFLATE file",
	Long: `Decompress a zlib stream (or, with --raw, a headerless DEFLATE
stream) into a file. The decompressed size must not exceed 65535 bytes,
matching the decoder's embedded target.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(inputFile)
		if err != nil {
			return err
		}

		c := tinflate.Decoder{TableFree: tableFree, SkipChecksum: noVerify}
		dst := make([]byte, 65535)
		var n int
		if raw {
			n, err = c.Inflate(dst, src)
		} else {
			n, err = c.InflateZlib(dst, src)
		}
		if err != nil {
			return fmt.Errorf("decompress %s: %w", inputFile, err)
		}
		return os.WriteFile(outputFile, dst[:n], 0666)
	},
}

func main() {
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "input file")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file")
	rootCmd.Flags().BoolVar(&raw, "raw", false, "input is a raw DEFLATE stream without zlib framing")
	rootCmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip Adler-32 verification")
	rootCmd.Flags().BoolVar(&tableFree, "table-free", false, "decode without symbol lookup tables")
	rootCmd.MarkFlagRequired("input")
	rootCmd.MarkFlagRequired("output")
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
