package events

// NewPublisherForTest expone el constructor sin conexión real.
var NewPublisherForTest = newPublisher
