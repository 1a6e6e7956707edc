/*
Package etched is a declarative command-line argument parser.

Options are declared up front with a tag used to read them back, a short and/or long spelling, and a typed value.
The declarations are validated once when a [Parser] is created, and then arguments are matched against them.

There are a few policies (opinions, really) for how this operates.

  - Declarations are checked before anything is parsed. Duplicate tags, duplicate spellings, and options that can't be typed on a command line are all reported together.
  - Positional arguments are not supported. Every argument is either an option, or the value of the option before it.
  - Flags are just boolean options. They never consume a value.
  - Help and version are terminal. Nothing may follow them, and matching them ends parsing with a [Result] to print, rather than exiting the process from inside the parser.
  - The parser doesn't print errors. They're returned so the program decides how to report them, and with which exit code.

# Declaring options

	parser, err := etched.NewParser(
		etched.String("host", "-H", "--host").Describe("Server hostname").Default("0.0.0.0"),
		etched.Int("port", "-p", "--port").Describe("Server port").Default(8080).Env("PORT"),
		etched.Bool("verbose", "-v", "--verbose").Describe("Enable verbose logging"),
		etched.Version("Server v1.0.0", "-V", "--version"),
		etched.Help("-h", "--help"),
	)

Values are read back by tag, with [Get] and [MustGet].

	port := etched.MustGet(etched.Get[int](parser, "port")).ValueOr(8080)

# Types

Text is converted with the [convert.Registry] given to [NewParserWith], or [convert.Default].
Integers are range checked for their exact width, so "128" is out of range for an int8, and negative text is malformed for unsigned types.
Any type can be supported by registering a [convert.Func] for it, or with [Value.Convert] for a single option.

# Repeated parsing

Defaults and environment values are installed once, when the [OptionSet] is created.
Parsing again keeps whatever earlier parses set, so call [OptionSet.Reset] first to start fresh.
*/
package etched
