/*
Package operation implements the file patcher: read each target, run a rule
set over it and write it back only when the text changed.

	+-------------+
	|   Targets   |
	| (Ordered)   |
	+------+------+
	       |
	+------+------+
	|  PatchFile  |
	| (Rule set)  |
	+------+------+
	       |
	+------+------+
	|   Verify    |
	| (Brackets)  |
	+------+------+
	       |
	+------+------+
	|    Write    |
	| (Same mode) |
	+-------------+

🎯 Purpose:
- Applies a text.Rule sequence to every target file
- Leaves files untouched unless the rewrite differs from the original
- Settles one status.Outcome per file: fixed, skipped, missing or error

🔄 Flow:
1. Stat the file, a missing file is reported and skipped
2. Read the whole file and run the rules in order
3. Compare the result with the original
4. Check bracket balance, then write with the original file mode

⚡ Key Responsibilities:
- Per-file failure isolation, one bad file never aborts the batch
- Dry runs that report a line diff instead of writing
- Strict mode, where an unmatched rule fails the file
- Cancellation between files

🤝 Interfaces:
- billy.Filesystem: where targets are read and written
- text.Rule: the rewrite steps

🔍 Example:

	p, err := operation.New(operation.Options{FS: osfs.New("."), Rules: rules, Verify: true})
	report := p.Run(ctx, targets)
	fmt.Println(status.FormatSummary(report.Fixed(), report.Total()))
*/
package operation
