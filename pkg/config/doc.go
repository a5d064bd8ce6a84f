/*
Package config manages configuration parsing and validation for layoutfix.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Holds the marker class, padding declaration and spacer component settings
- Holds the ordered target file list the rule sets run over
- Falls back to the built-in dashboard page list when no file is given

🔄 Flow:
1. Reads configuration from file (or uses Default)
2. Parses format-specific syntax
3. Fills defaults and validates
4. Resolves the target list (literal files, then sorted glob matches)

📝 Notes:
Target paths are literal. Route segments such as (dashboard) or [id] are
never treated as glob syntax; only entries under globs are expanded.
HCL configs can reference the built-in list as default_files, for example
files = concat(default_files, ["app/(dashboard)/extra/page.tsx"]).
*/
package config
