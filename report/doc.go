// Package report renders analysis results as a document keyed by year:
//
//	{
//	    "1976": {
//	        "tie": ["OH"],
//	        "win": ["OH", "WI"]
//	    }
//	}
//
// "tie" is present only for years with an even total weight. JSON output
// uses a four-space indent; YAML output is equivalent. With Detailed set,
// each year also carries the winner, the total weight and the popular-vote
// cost of every outcome.
package report
