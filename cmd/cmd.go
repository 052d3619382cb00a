package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"
	"github.com/warpdl/chromecookies/cmd/common"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:                  "chromecookies",
		HelpName:              "chromecookies",
		Usage:                 "Reads the cookies Chrome would send to a URL.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "chromecookies [command] [options] <url>",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:                   "get",
				Aliases:                []string{"g"},
				Usage:                  "print the cookies for a url",
				UsageText:              "[options] <url>",
				Description:            GetDescription,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				OnUsageError:           common.UsageErrorCallback,
				Action:                 get,
				Flags:                  getFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "paths",
				Aliases:                []string{"p"},
				Usage:                  "list the cookie stores that would be searched",
				UsageText:              "[--profile <name>]",
				Description:            PathsDescription,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				OnUsageError:           common.UsageErrorCallback,
				Action:                 paths,
				Flags:                  pathsFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of chromecookies",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		Action:                 get,
		Flags:                  getFlags,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
