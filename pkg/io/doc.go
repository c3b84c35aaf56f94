// Package io exports a computed org chart as JSON.
//
// # JSON Format
//
//	{
//	  "generator": "orgchart v1.0.0",
//	  "members": [
//	    {"id": "crudy", "full_name": "Casey Rudy", "generation": 0, "position": {"x": 0, "y": 1}},
//	    {"id": "kbinaxas", "full_name": "Kyle Binaxas", "manager_id": "crudy",
//	     "icon": "icons/kyle.jpg", "generation": 1, "position": {"x": 0, "y": -1}}
//	  ],
//	  "edges": [{"from": "crudy", "to": "kbinaxas"}],
//	  "generations": [["crudy"], ["kbinaxas"]]
//	}
//
// Positions are layout coordinates (largest absolute value 1, y up), not
// pixels. "generations" lists each row in its left-to-right order.
//
// [WriteJSON] writes to any io.Writer; the pipeline saves the bytes with
// the other artifacts.
package io
