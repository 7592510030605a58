package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/jessevdk/go-flags"
	"github.com/viant/kitgen/cmd/command"
	soptions "github.com/viant/kitgen/cmd/options"
)

//New parses args and renders program clients, logs go to logWriter (stdout when nil)
func New(version string, args []string, logWriter io.Writer) error {
	options, err := buildOptions(args)
	if err != nil || options == nil {
		return err
	}
	if options.Version {
		fmt.Printf("kitgen: version: %v\n", version)
		return nil
	}
	if err := options.Init(); err != nil {
		return err
	}
	cmd := command.New(logWriter)
	return cmd.Exec(context.Background(), options)
}

func buildOptions(args []string) (*soptions.Options, error) {
	options := &soptions.Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, err
	}
	return options, nil
}
