package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"

	"go.mau.fi/util/exerrors"
)

func main() {
	currentDir := exerrors.Must(os.Getwd())

	errorCSV := exerrors.Must(os.Open(currentDir + "/../internal/gen/errors.csv"))
	reader := csv.NewReader(errorCSV)
	var data bytes.Buffer
	data.WriteString("// Code generated by pkg/internal/gen; DO NOT EDIT.\n\n")
	data.WriteString("package humanise\n")
	data.WriteString("import (\n")
	data.WriteString("\"context\"\n")
	data.WriteString("\"io/fs\"\n\n")
	data.WriteString("\"github.com/go-faster/errors\"\n\n")
	data.WriteString("\"go.mau.fi/tgfileid/pkg/fileid\"\n")
	data.WriteString(")\n")
	data.WriteString("// Error returns a sentence describing err for people who don't know the\n")
	data.WriteString("// identifier format. Unknown errors are returned as is.\n")
	data.WriteString("func Error(err error) string {\n")
	data.WriteString("switch {\n")
	data.WriteString("case err == nil: return \"\"\n")
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			} else {
				panic(err)
			}
		}

		data.WriteString("case errors.Is(err, ")
		data.WriteString(row[0])
		data.WriteString("): return ")
		data.WriteString(strconv.Quote(row[1]))
		data.WriteString("\n")

		fmt.Printf("row %+v\n", row)
	}
	data.WriteString("}\n")
	data.WriteString("return err.Error()")
	data.WriteString("}\n")

	formatted := exerrors.Must(format.Source(data.Bytes()))
	exerrors.PanicIfNotNil(os.WriteFile(currentDir+"/errors.go", formatted, 0644))
}
