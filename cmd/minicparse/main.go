// Command minicparse parses one source file and dumps its parse tree.
// Everything here is a peripheral collaborator of the core lexer/parser,
// not part of it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lukeod/minic/diag"
	"github.com/lukeod/minic/lexer"
	"github.com/lukeod/minic/parser"
	"github.com/lukeod/minic/printer"
)

func main() {
	log.SetFlags(0)

	dumpTokens := flag.Bool("tokens", false, "dump the raw token stream instead of parsing")
	useRepr := flag.Bool("repr", false, "dump the parse tree with alecthomas/repr instead of the default format")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: minicparse [-tokens] [-repr] <source-file>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minicparse: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if *dumpTokens {
		tokens, err := lexer.DumpTokens(f, path)
		if err != nil {
			log.Fatalf("minicparse: %v", err)
		}
		for _, t := range tokens {
			fmt.Printf("%s:%d:%d\t%s\t%q\n", path, t.Pos.Line, t.Pos.Column, lexer.KindOf(t.Type), t.Value)
		}
		return
	}

	fmt.Println(path)

	reporter := diag.Default()
	tree := parser.Parse(f, path, reporter)

	if *useRepr {
		if err := printer.DumpRepr(os.Stdout, tree); err != nil {
			log.Fatalf("minicparse: %v", err)
		}
	} else if err := printer.Dump(os.Stdout, tree); err != nil {
		log.Fatalf("minicparse: %v", err)
	}

	// Exit 0 regardless of diagnostic count; the error counter is not
	// currently plumbed into the exit code.
}
