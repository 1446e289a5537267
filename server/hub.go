package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"flowsim/calculator"
	"flowsim/channel"
	"flowsim/material"
	"flowsim/model"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// 消息类型
const (
	TypeSimulate         = "simulate"
	TypeSimulateMaterial = "simulateMaterial"
	TypeMaterials        = "materials"

	TypeResult = "result"
	TypeError  = "error"
)

const kindNotFound = "not_found"

// Hub 处理单个连接上的请求
type Hub struct {
	calc     *calculator.Calculator
	catalog  *material.Catalog
	setup    channel.Setup
	maxSteps int

	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
}

func NewHub(calc *calculator.Calculator, catalog *material.Catalog, setup channel.Setup, maxSteps int) *Hub {
	return &Hub{
		calc:     calc,
		catalog:  catalog,
		setup:    setup,
		maxSteps: maxSteps,
		msg:      make(chan model.Msg, 10),
		reply:    make(chan model.Msg, 10),
	}
}

func (h *Hub) handleRequest() {
	defer close(h.reply)
	for msg := range h.msg {
		h.reply <- h.Handle(msg)
	}
}

func (h *Hub) handleResponse(done chan<- struct{}) {
	defer close(done)
	for reply := range h.reply {
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.WithError(err).WithField("id", reply.Id).Warn("write reply failed")
		}
	}
}

// Handle 处理一条请求并返回回复
func (h *Hub) Handle(msg model.Msg) model.Msg {
	if msg.Id == "" {
		msg.Id = uuid.NewString()
	}
	logger := log.WithFields(log.Fields{"id": msg.Id, "type": msg.Type})

	switch msg.Type {
	case TypeSimulate:
		var in model.SimulationInput
		if err := json.Unmarshal([]byte(msg.Content), &in); err != nil {
			return errorReply(msg.Id, calculator.KindValidation.String(), fmt.Sprintf("bad simulation input: %v", err))
		}
		return h.simulate(msg.Id, in, logger)
	case TypeSimulateMaterial:
		var req model.MaterialReqData
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			return errorReply(msg.Id, calculator.KindValidation.String(), fmt.Sprintf("bad material request: %v", err))
		}
		m, err := h.catalog.Get(req.Material)
		if err != nil {
			return errorReply(msg.Id, kindNotFound, err.Error())
		}
		return h.simulate(msg.Id, channel.Compose(h.setup.Override(req), m), logger.WithField("material", m.Key))
	case TypeMaterials:
		data, _ := json.Marshal(h.catalog.Keys())
		return model.Msg{Type: TypeMaterials, Id: msg.Id, Content: string(data)}
	default:
		logger.Warn("no such type")
		return errorReply(msg.Id, calculator.KindValidation.String(), fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

func (h *Hub) simulate(id string, in model.SimulationInput, logger *log.Entry) model.Msg {
	if !calculator.ValidateParameters(in) {
		err := calculator.Validate(in)
		logger.WithError(err).Info("rejected simulation input")
		return errorReply(id, calculator.KindValidation.String(), err.Error())
	}
	n, err := calculator.StepCount(in)
	if err != nil {
		return errorReply(id, calculator.KindOf(err).String(), err.Error())
	}
	if h.maxSteps > 0 && n > h.maxSteps {
		return errorReply(id, calculator.KindValidation.String(),
			fmt.Sprintf("step count %d exceeds limit %d", n, h.maxSteps))
	}

	result, err := h.calc.Run(in)
	if err != nil {
		var calcErr *calculator.Error
		if errors.As(err, &calcErr) && calcErr.Kind == calculator.KindProgramming {
			logger.WithError(err).Error("simulation failed")
		} else {
			logger.WithError(err).Info("simulation rejected")
		}
		return errorReply(id, calculator.KindOf(err).String(), err.Error())
	}

	data, err := json.Marshal(result)
	if err != nil {
		logger.WithError(err).Error("encode result failed")
		return errorReply(id, calculator.KindProgramming.String(), err.Error())
	}
	logger.WithFields(log.Fields{
		"steps":        result.StepsCount,
		"productivity": result.Productivity,
		"finalTemp":    result.FinalTemp,
	}).Info("simulation done")
	return model.Msg{Type: TypeResult, Id: id, Content: string(data)}
}

func errorReply(id, kind, message string) model.Msg {
	data, _ := json.Marshal(model.ErrorContent{Kind: kind, Message: message})
	return model.Msg{Type: TypeError, Id: id, Content: string(data)}
}
