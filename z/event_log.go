package z

import "golang.org/x/net/trace"

// NoEventLog is the event sink used when tracing is disabled, every event is
// dropped on the floor.
var NoEventLog trace.EventLog = nilEventLog{}

type nilEventLog struct{}

func (nel nilEventLog) Printf(format string, a ...interface{}) {}

func (nel nilEventLog) Errorf(format string, a ...interface{}) {}

func (nel nilEventLog) Finish() {}
