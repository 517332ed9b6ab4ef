package casefy

type (
	//Result represents TransformKeys outcome
	Result struct {
		Data            interface{} `json:"data" yaml:"data"`
		TransformedKeys int         `json:"transformedKeys" yaml:"transformedKeys"`
		From            string      `json:"from" yaml:"from"`
		To              string      `json:"to" yaml:"to"`
		Deep            bool        `json:"deep" yaml:"deep"`
		Arrays          bool        `json:"arrays" yaml:"arrays"`
		//Error data error message, empty on success
		Error string `json:"error,omitempty" yaml:"error,omitempty"`
		//Err data error, nil on success
		Err error `json:"-" yaml:"-"`
	}

	//Outcome represents Service.Transform outcome
	Outcome struct {
		Data            interface{} `json:"data" yaml:"data"`
		TransformedKeys int         `json:"transformedKeys" yaml:"transformedKeys"`
		FromCase        string      `json:"fromCase" yaml:"fromCase"`
		ToCase          string      `json:"toCase" yaml:"toCase"`
		Success         bool        `json:"success" yaml:"success"`
		Error           string      `json:"error,omitempty" yaml:"error,omitempty"`
		Err             error       `json:"-" yaml:"-"`
	}
)

func (o *Outcome) result(options *Options) *Result {
	return &Result{
		Data:            o.Data,
		TransformedKeys: o.TransformedKeys,
		From:            o.FromCase,
		To:              o.ToCase,
		Deep:            options.Deep,
		Arrays:          options.Arrays,
		Error:           o.Error,
		Err:             o.Err,
	}
}
