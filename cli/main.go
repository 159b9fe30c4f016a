package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bitflag"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "bitflag",
		Short:         "Convert flag sets between integer, JSON and binary record form.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	root.AddCommand(decodeCommand(), encodeCommand(), packCommand(), unpackCommand())
	return root
}

func decodeCommand() *cobra.Command {
	var (
		width uint8
		names string
	)
	cmd := &cobra.Command{
		Use:   "decode <value>",
		Short: "Print the flags stored in an integer.",
		Example: `  bitflag decode --width 8 --names read,write,exec 5
  Flags8 {read=true, write=false, exec=true}
  {"read":true,"write":false,"exec":true}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := bitflag.New(bitflag.Width(width), strings.Split(names, ","), nil)
			if err != nil {
				return err
			}
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(bitflag.ErrInvalidArgument, "value %q is not a number", args[0])
			}
			if err := c.FromNumber(v); err != nil {
				return err
			}
			data, err := c.ToJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().Uint8VarP(&width, "width", "w", 8, "bit width: 8, 16 or 32")
	cmd.Flags().StringVarP(&names, "names", "n", "", "comma separated flag names in bit order")
	_ = cmd.MarkFlagRequired("names")
	return cmd
}

func encodeCommand() *cobra.Command {
	var width uint8
	cmd := &cobra.Command{
		Use:   "encode <json>",
		Short: "Print the integer for a JSON object of flags.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := bitflag.FromJSON(bitflag.Width(width), []byte(args[0]), nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.ToValue())
			return nil
		},
	}
	cmd.Flags().Uint8VarP(&width, "width", "w", 8, "bit width: 8, 16 or 32")
	return cmd
}

func packCommand() *cobra.Command {
	var (
		width       uint8
		compression string
	)
	cmd := &cobra.Command{
		Use:   "pack <json>",
		Short: "Print the hex encoded binary record for a JSON object of flags.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := bitflag.ParseCompressAlgorithm(compression)
			if err != nil {
				return err
			}
			c, err := bitflag.FromJSON(bitflag.Width(width), []byte(args[0]), &bitflag.Options{Compression: algo})
			if err != nil {
				return err
			}
			data, err := c.MarshalBinary()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			return nil
		},
	}
	cmd.Flags().Uint8VarP(&width, "width", "w", 8, "bit width: 8, 16 or 32")
	cmd.Flags().StringVarP(&compression, "compression", "c", bitflag.CompSnappy.String(), "name block compression: snappy, lz4 or none")
	return cmd
}

func unpackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <hex>",
		Short: "Print a hex encoded binary record.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(strings.TrimSpace(args[0]))
			if err != nil {
				return errors.Wrap(err, "record is not hex")
			}
			c, err := bitflag.Decode(data, nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			fmt.Fprintln(cmd.OutOrStdout(), c.ToValue())
			return nil
		},
	}
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
}
