package requester

const lineSeparator = "\r\n"
