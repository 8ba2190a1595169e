package encode

type DumpOption func(*dumpState)

func DumpColors(c *Colors) DumpOption {
	return func(ds *dumpState) { ds.colors = c }
}

func DumpIndent(n int) DumpOption {
	return func(ds *dumpState) { ds.indent = n }
}
