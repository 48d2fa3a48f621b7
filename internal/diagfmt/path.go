package diagfmt

import "glslfront/internal/source"

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	default:
		return f.FormatPath(mode.String(), "")
	}
}
