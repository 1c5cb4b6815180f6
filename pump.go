package easysteam

import (
	"context"
)

// Response is one already correlated response handed over by the upstream registry.
// Either Record holds the decoded record, or Body holds its raw encoding.
type Response struct {
	JobID  JobID
	Kind   RecordKind
	Record interface{}
	Body   []byte
}

// Pump translates responses read from a channel and dispatches the resulting callbacks.
type Pump struct {
	translator *Translator
	dispatcher Dispatcher
}

// NewPump creates a Pump.
// Translator defaults to NewTranslator(nil) when t is nil.
func NewPump(t *Translator, d Dispatcher) *Pump {
	if t == nil {
		t = NewTranslator(nil)
	}
	return &Pump{translator: t, dispatcher: d}
}

// Serve reads responses from in until in is closed or ctx is done.
// Responses are translated and dispatched one at a time, in order.
// A response which fails translation is logged and skipped,
// so is a dispatch failure.
// Returns ctx.Err() if ctx is done, nil if in is closed.
func (p *Pump) Serve(ctx context.Context, in <-chan *Response) error {
	for {
		select {
		case <-ctx.Done():
			Log.Tracef("pump exit because context is done")
			return ctx.Err()
		case resp, ok := <-in:
			if !ok {
				Log.Tracef("pump exit because response channel is closed")
				return nil
			}
			if resp == nil {
				continue
			}
			cb, err := p.translate(resp)
			if err != nil {
				Log.Errorf("pump translate job %s err: %s", resp.JobID, err)
				continue
			}
			if err := p.dispatcher.Dispatch(cb); err != nil {
				Log.Errorf("pump dispatch %s err: %s", cb.Kind(), err)
			}
		}
	}
}

// Connected dispatches the callback of an established connection.
func (p *Pump) Connected() error {
	return p.dispatcher.Dispatch(p.translator.Connected())
}

// Disconnected dispatches the callback of a torn down connection.
func (p *Pump) Disconnected(userInitiated bool) error {
	return p.dispatcher.Dispatch(p.translator.Disconnected(userInitiated))
}

func (p *Pump) translate(resp *Response) (Callback, error) {
	if resp.Record == nil && resp.Body != nil {
		return p.translator.TranslateRaw(resp.JobID, resp.Kind, resp.Body)
	}
	return p.translator.Translate(resp.JobID, resp.Kind, resp.Record)
}
