/*
Package status describes and formats what happened to each target file.

	            +-------------+
	            |   Outcome   |
	            |   (State)   |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  Format   |           | Summary |
	|  (Lines)  |           | (Count) |
	+-----------+           +---------+

🎯 Purpose:
- Names the four per-file outcomes: fixed, skipped, missing, error
- Formats one line per file in colour or emoji style
- Formats the closing "Fixed N of M files" summary

🔄 Flow:
1. The operation package settles an Outcome for each file
2. The log package asks a FileFormatter for the line to print
3. The summary is printed once the batch finishes

🤝 Interfaces:
- FileFormatter: formats outcomes, progress and errors

📝 Design Philosophy:
Outcomes are plain values with no knowledge of how they were reached. Keeping
presentation here lets the operation package stay free of terminal concerns
and lets the CLI pick a style without touching the patcher.
*/
package status
