// Copyright 2021 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var (
	testFlag     bool
	lintFlag     bool
	benchFlag    bool
	packagesFlag string
)

func done(msg string, err error) {
	fmt.Printf("Failed: %s: %s\n", msg, err)
	os.Exit(1)
}

func main() {
	ctx := context.Background()
	flag.BoolVar(&testFlag, "test", false, "run tests")
	flag.BoolVar(&lintFlag, "lint", false, "run go vet")
	flag.BoolVar(&benchFlag, "bench", false, "run the heap benchmarks")
	flag.StringVar(&packagesFlag, "packages", "./...", "comma separated list of packages")

	flag.Parse()

	if !(testFlag || lintFlag || benchFlag) {
		fmt.Fprintf(os.Stderr, "at least one flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	pkgs := strings.Split(packagesFlag, ",")

	if lintFlag {
		if err := run(ctx, "vet", append([]string{"vet"}, pkgs...)); err != nil {
			done("lint", err)
		}
	}

	if testFlag {
		args := []string{"test", "-failfast", "--covermode=atomic", "--vet=off", "-race"}
		if err := run(ctx, "test", append(args, pkgs...)); err != nil {
			done("tests", err)
		}
	}

	if benchFlag {
		args := []string{"test", "-run=^$", "-bench=.", "-benchmem", "./heap"}
		if err := run(ctx, "bench", args); err != nil {
			done("benchmarks", err)
		}
	}
}

func run(ctx context.Context, name string, args []string) error {
	fmt.Printf("%v...\n", name)
	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		fmt.Printf("%v... ok\n", name)
	} else {
		fmt.Printf("%v... failed\n", name)
	}
	return err
}
