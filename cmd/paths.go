package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"github.com/warpdl/chromecookies/cmd/common"
	"github.com/warpdl/chromecookies/internal/cookies"
)

var pathsFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "profile, p",
		Usage: "browser profile directory name",
		Value: cookies.DefaultProfile,
	},
}

func paths(ctx *cli.Context) error {
	profile := ctx.String("profile")
	if profile == "" {
		profile = cookies.DefaultProfile
	}
	for _, b := range cookies.Browsers {
		dir, err := cookies.UserDataDir(b)
		if err != nil {
			return common.Fail(ctx, "paths", b.ID, err)
		}
		fmt.Printf("%s (%s)\n", b.ID, b.Name)
		for _, p := range cookies.StoreCandidates(dir, profile) {
			state := "missing"
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				state = "found"
			}
			fmt.Printf("  %-8s %s\n", "["+state+"]", p)
		}
	}
	return nil
}
