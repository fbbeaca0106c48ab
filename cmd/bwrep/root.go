package main

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bwrepstat/parser/rep"
	"github.com/bwrepstat/parser/repparser"
)

const validMapDataHashes = "valid values are 'sha1', 'sha256', 'sha512', 'md5'"

// cliOpts holds the flag values of the root command.
type cliOpts struct {
	header      bool
	mapData     bool
	mapTiles    bool
	mapResLoc   bool
	cmds        bool
	computed    bool
	mapDataHash string
	dumpMapData bool
	outFile     string
	indent      bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOpts{}

	cmd := &cobra.Command{
		Use:     appName + " [flags] replay-file.rep",
		Short:   "Parse and display information about a StarCraft: Brood War replay",
		Version: appVersion,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.header, "header", true, "print replay header")
	flags.BoolVar(&opts.mapData, "map", false, "print map data")
	flags.BoolVar(&opts.mapTiles, "maptiles", false, "print map data tiles; valid with --map")
	flags.BoolVar(&opts.mapResLoc, "mapres", false, "print map data resource locations (minerals and geysers); valid with --map")
	flags.BoolVar(&opts.cmds, "cmds", false, "print player commands")
	flags.BoolVar(&opts.computed, "computed", true, "print computed / derived data")
	flags.StringVar(&opts.mapDataHash, "map-data-hash", "", "calculate and print the hash of map data section too using the given algorithm; "+validMapDataHashes)
	flags.BoolVar(&opts.dumpMapData, "dump-map-data", false, "dump the raw map data (CHK) instead of JSON replay info; use it with --outfile")
	flags.StringVar(&opts.outFile, "outfile", "", "optional output file name")
	flags.BoolVar(&opts.indent, "indent", true, "use indentation when formatting output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log parsing diagnostics to stderr")

	cmd.SetVersionTemplate(versionText())

	return cmd
}

func versionText() string {
	return fmt.Sprintf(
		"%s version: %s\nParser version: %s\nEAPM algorithm version: %s\nPlatform: %s/%s\nBuilt with: %s\nHome page: %s\n",
		appName, appVersion, repparser.Version, rep.EAPMVersion, runtime.GOOS, runtime.GOARCH, runtime.Version(), appHome,
	)
}

func run(path string, opts *cliOpts) error {
	logger := newLogger(opts.verbose)
	repparser.SetLogger(logger)

	cfg := repparser.Config{
		Commands: true,
		MapData:  true,
	}

	var mapDataHasher hash.Hash
	if opts.mapDataHash != "" {
		cfg.Debug = true
		switch strings.ToLower(opts.mapDataHash) {
		case "md5":
			mapDataHasher = md5.New()
		case "sha1":
			mapDataHasher = sha1.New()
		case "sha256":
			mapDataHasher = sha256.New()
		case "sha512":
			mapDataHasher = sha512.New()
		default:
			return fmt.Errorf("invalid map-data-hash: %v (%s)", opts.mapDataHash, validMapDataHashes)
		}
	}

	if opts.dumpMapData {
		cfg.Debug = true
	}

	r, err := repparser.ParseFileConfig(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse replay: %w", err)
	}

	destination := os.Stdout
	if opts.outFile != "" {
		f, err := os.Create(opts.outFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		destination = f
	}

	if opts.dumpMapData {
		_, err := destination.Write(r.MapData.Debug.Data)
		return err
	}

	custom := map[string]interface{}{}

	if !opts.computed {
		r.Computed = nil
	}

	if mapDataHasher != nil {
		mapDataHasher.Write(r.MapData.Debug.Data)
		custom["MapDataHash"] = hex.EncodeToString(mapDataHasher.Sum(nil))
	}

	if !opts.header {
		r.Header = nil
	}
	if !opts.mapData {
		r.MapData = nil
	} else {
		if !opts.mapTiles {
			r.MapData.Tiles = nil
		}
		if !opts.mapResLoc {
			r.MapData.MineralFields = nil
			r.MapData.Geysers = nil
		}
	}
	if !opts.cmds {
		r.Commands = nil
	}

	enc := json.NewEncoder(destination)
	if opts.indent {
		enc.SetIndent("", "  ")
	}

	var valueToEncode interface{} = r
	if len(custom) > 0 {
		valueToEncode = struct {
			*rep.Replay
			Custom map[string]interface{}
		}{r, custom}
	}

	return enc.Encode(valueToEncode)
}
