package cpu

// Step fetches, decodes and executes a single instruction. A zero
// word halts the machine; an unclassifiable word faults it and
// returns a BadInstructionError carrying the faulting address. Step
// is a no-op once the machine has left the Running state.
func (c *CPU) Step() error {
	if c.State != Running {
		return nil
	}

	c.tracef("at 0%04o, ", c.R[PC])

	word := c.ReadWord(c.R[PC])
	c.Stats.InstrFetch++
	c.R[PC] += 2

	if word == 0 {
		c.tracef("halt instruction\n")
		c.printRegs()
		c.State = Halted
		return nil
	}
	c.Stats.InstrExec++

	inst, err := c.Decode(word)
	if err != nil {
		c.State = Faulted
		if bad, ok := err.(*BadInstructionError); ok {
			bad.PC = c.R[PC] - 2
		}
		return err
	}

	if err := inst.Handler(c, inst); err != nil {
		c.State = Faulted
		return err
	}

	c.printRegs()
	return nil
}

// Run executes instructions until the machine halts or faults.
func (c *CPU) Run() error {
	for c.State == Running {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}
