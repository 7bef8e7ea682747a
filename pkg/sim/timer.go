package sim

const timerEpsilon = 1e-9

// Deferred fires once after a delay in simulated seconds. It is bound to the
// epoch it was armed in and never fires in a later one.
type Deferred struct {
	remaining float64
	epoch     uint64
	armed     bool
}

func (d *Deferred) Arm(delay float64, epoch uint64) {
	d.remaining, d.epoch, d.armed = delay, epoch, true
}

func (d *Deferred) Cancel() {
	d.armed = false
}

func (d *Deferred) Armed() bool {
	return d.armed
}

// Tick advances the timer and reports whether it fired on this call.
func (d *Deferred) Tick(dt float64, epoch uint64) bool {
	if !d.armed {
		return false
	}
	if d.epoch != epoch {
		d.armed = false
		return false
	}
	d.remaining -= dt
	if d.remaining > timerEpsilon {
		return false
	}
	d.armed = false
	return true
}
