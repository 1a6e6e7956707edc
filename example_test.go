package etched

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/etched/errs"
	"os"
)

func ExampleNewParser() {
	parser, err := NewParser(
		String("host", "-H", "--host").Describe("Server hostname").Default("0.0.0.0"),
		Int("port", "-p", "--port").Describe("Server port").Default(8080),
		Bool("verbose", "-v", "--verbose").Describe("Enable verbose logging"),
		Help("-h", "--help"),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	if _, err := parser.Parse([]string{"server", "--port", "3000", "-v"}); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(MustGet(Get[string](parser, "host")).ValueOr(""))
	fmt.Println(MustGet(Get[int](parser, "port")).ValueOr(0))
	fmt.Println(MustGet(Get[bool](parser, "verbose")).ValueOr(false))

	// Output:
	// 0.0.0.0
	// 3000
	// true
}

func ExampleNewParser_configurationError() {
	_, err := NewParser(
		Int("port", "-p", "--port"),
		Int("port", "-p", "--port"),
	)
	fmt.Println(err)

	// Output:
	// configuration error: duplicate option tag: "port"; duplicate flag: short flag -p used by "port" and "port"; duplicate flag: long flag --port used by "port" and "port"
}

func ExampleParser_Parse_terminal() {
	parser := MustGet(NewParser(
		Int("port", "-p", "--port"),
		Help("-h", "--help"),
	))
	_, err := parser.Parse([]string{"server", "--help", "-p", "3000"})
	fmt.Println(errors.Is(err, &errs.InvalidArgument{}))
	fmt.Println(err)

	// Output:
	// true
	// no arguments allowed after terminal option: --help
}

func ExampleParser_Run() {
	parser := MustGet(NewParser(
		Int("port", "-p", "--port").Describe("Server port"),
		Version("Server v1.0.0", "-V", "--version").Describe("Print the version"),
		Help("-h", "--help"),
	))
	// Done for testing purposes
	parser.Printer().Redirect(os.Stdout)
	parser.SetExit(func(int) {})

	_ = parser.Run([]string{"server", "--help"})
	_ = parser.Run([]string{"server", "-V"})

	// Output:
	// -p, --port <value>    Server port
	// -V, --version    Print the version
	// -h, --help    Show this help message
	// Server v1.0.0
}

func ExampleCallback() {
	parser := MustGet(NewParser(
		Callback("license", "", "--license", func() error {
			fmt.Println("Licensed under the MIT license")
			return nil
		}),
	))
	res, err := parser.Parse([]string{"server", "--license"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Outcome)

	// Output:
	// Licensed under the MIT license
	// resolved
}
