// Command backup exports or restores the local growth snapshot.
//
//	backup export -dir /var/lib/growth-tracker [-out snapshot.json]
//	backup import -dir /var/lib/growth-tracker -in snapshot.json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"child-growth-tracker/internal/adapters/kvstore"
	"child-growth-tracker/internal/adapters/storage/localstore"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "export":
		err = runExport(os.Args[2:])
	case "import":
		err = runImport(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "backup:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: backup export|import -dir <snapshot-dir> [-out file] [-in file]")
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dir := fs.String("dir", "", "snapshot directory")
	out := fs.String("out", "", "output file (default stdout)")
	_ = fs.Parse(args)

	store, err := openStore(*dir)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	return store.Export(w)
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	dir := fs.String("dir", "", "snapshot directory")
	in := fs.String("in", "", "input file (default stdin)")
	_ = fs.Parse(args)

	store, err := openStore(*dir)
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	return store.Import(r)
}

func openStore(dir string) (*localstore.Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("-dir is required")
	}
	kv, err := kvstore.NewFile(dir)
	if err != nil {
		return nil, err
	}
	return localstore.New(kv), nil
}
