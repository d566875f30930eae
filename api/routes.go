package api

import "github.com/tedsuo/rata"

const (
	Evaluate = "Evaluate"
	Health   = "Health"
)

// SessionIDHeader lets a caller group requests so that a newer password
// supersedes the evaluation of an older one.
const SessionIDHeader = "X-Session-Id"

var Routes = rata.Routes{
	{Path: "/v1/evaluate", Method: "POST", Name: Evaluate},
	{Path: "/v1/health", Method: "GET", Name: Health},
}
