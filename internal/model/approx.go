package model

// StepApprox advances the node by one time step using the fast approximate
// update: the node voltage is taken as the bare terminal estimate q/C and the
// ESR drop is applied after integration, with no quadratic solve. The source
// is modelled as constant power ArrayAreaM2 * Efficiency * OpenCircuitV
// delivered at the node voltage, and the load runs whenever the voltage is at
// or above the threshold. Cheaper and cruder than Step; it never saturates
// the source at Voc.
func (n *Node) StepApprox() (StepResult, error) {
	p := n.Params
	s := &n.State

	solarW := p.ArrayAreaM2 * p.Efficiency * p.OpenCircuitV

	v := s.ChargeC / p.CapacitanceF

	iLoad := 0.0
	pMode := 0.0
	if v >= p.VThreshV {
		pMode = p.LoadPowerW
		if v > 0 {
			iLoad = p.LoadPowerW / v
		}
	}

	iIn := 0.0
	if v > 0 {
		iIn = solarW / v
	}

	s.ChargeC += (iIn - iLoad) * p.TimeStepS
	if s.ChargeC < 0 {
		s.ChargeC = 0
	}

	v -= p.ESROhms * (iIn - iLoad)
	if v < 0 {
		v = 0
	}

	s.VoltageV = v
	s.SourceCurrentA = iIn
	s.LoadPowerW = pMode

	res := StepResult{
		TimeS:          s.TimeS,
		VoltageV:       s.VoltageV,
		ChargeC:        s.ChargeC,
		SourceCurrentA: s.SourceCurrentA,
		LoadPowerW:     s.LoadPowerW,
		LoadCurrentA:   iLoad,
	}
	s.TimeS += p.TimeStepS
	return res, nil
}
