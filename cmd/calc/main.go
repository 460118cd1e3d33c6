package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/graeme-hill/exprstuff-go/lib"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	astFlag = kingpin.Flag("ast", "Dump the parsed tree for each expression.").Bool()
	dotFlag = kingpin.Flag("dot", "Print the parsed tree in GraphViz dot format instead of evaluating.").Bool()
	exprArg = kingpin.Arg("expression", "Expression to evaluate; reads lines from stdin when omitted.").Strings()
)

type options struct {
	ast bool
	dot bool
}

func main() {
	kingpin.Parse()
	opts := options{ast: *astFlag, dot: *dotFlag}

	if len(*exprArg) > 0 {
		line := strings.Join(*exprArg, " ")
		if err := evalLine(os.Stdout, line, opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	run(os.Stdin, os.Stdout, os.Stderr, opts)
}

// run is the interactive loop: one expression per line, "exit" quits. A
// bad line is reported on stderr and the loop moves on to the next one.
func run(stdin io.Reader, stdout io.Writer, stderr io.Writer, opts options) {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, ">> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "exit" {
			break
		}
		if err := evalLine(stdout, line, opts); err != nil {
			fmt.Fprintln(stderr, err)
		}
	}
}

func evalLine(stdout io.Writer, line string, opts options) error {
	expr, err := lib.Parse(line)
	if err != nil {
		return err
	}

	if opts.ast {
		repr.New(stdout).Println(expr)
	}
	if opts.dot {
		return lib.WriteDot(stdout, expr)
	}

	result, err := lib.Eval(expr)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s\n%v\n", lib.Render(expr), result)
	return nil
}
